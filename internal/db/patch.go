package db

import (
	"time"

	"github.com/HERYORDEJY/FitQii/internal/models"
)

// ApplyTo merges the patch into a copy of s, mirroring what Update writes.
// The query layer uses it to project an optimistic cache value before the
// store write resolves.
func (req UpdateSessionRequest) ApplyTo(s models.Session) models.Session {
	now := time.Now().UnixMilli()
	s.UpdatedAt = &now

	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Category != nil {
		s.Category = *req.Category
	}
	if req.StartDate != nil {
		s.StartDate = req.StartDate.UnixMilli()
	}
	if req.EndDate != nil {
		s.EndDate = req.EndDate.UnixMilli()
	}
	if req.StartTime != nil {
		s.StartTime = req.StartTime.UnixMilli()
	}
	if req.EndTime != nil {
		s.EndTime = req.EndTime.UnixMilli()
	}
	if req.Timezone != nil {
		s.Timezone = *req.Timezone
	}
	if req.Reminder != nil {
		s.Reminder = *req.Reminder
	}
	if req.Repetition != nil {
		s.Repetition = *req.Repetition
	}
	if req.Mode != nil {
		s.Mode = *req.Mode
	}
	if req.Link != nil {
		s.Link = req.Link
	}
	if req.Location != nil {
		s.Location = req.Location
	}
	if req.Description != nil {
		s.Description = req.Description
	}
	if req.Attachments != nil {
		s.Attachments = *req.Attachments
	}
	if req.Status != nil && *req.Status != s.Status {
		s.Status = *req.Status
		s.StatusAt = &now
	}
	return s
}

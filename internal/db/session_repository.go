package db

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HERYORDEJY/FitQii/internal/dates"
	"github.com/HERYORDEJY/FitQii/internal/models"
)

// CreateSessionRequest holds the data needed to create a new session. Date and
// time fields are normalized to epoch-millisecond integers at write time.
type CreateSessionRequest struct {
	Name     string
	Category string

	StartDate time.Time
	EndDate   time.Time
	StartTime time.Time
	EndTime   time.Time

	Timezone   string
	Reminder   int64
	Repetition int64

	Mode        string
	Link        string
	Location    string
	Description string

	Attachments models.AttachmentList

	// Status defaults to upcoming when empty.
	Status models.Status
}

// UpdateSessionRequest is a partial update: only non-nil fields are written.
type UpdateSessionRequest struct {
	Name     *string
	Category *string

	StartDate *time.Time
	EndDate   *time.Time
	StartTime *time.Time
	EndTime   *time.Time

	Timezone   *string
	Reminder   *int64
	Repetition *int64

	Mode        *string
	Link        *string
	Location    *string
	Description *string

	Attachments *models.AttachmentList

	Status *models.Status
}

// WeekQuery selects the week and search filter for WeekSessions.
type WeekQuery struct {
	Search string
	// ReferenceDate picks the week; zero means the current week.
	ReferenceDate time.Time
}

// DayBucket groups the sessions overlapping one calendar day, for
// section-list style rendering.
type DayBucket struct {
	Title time.Time        `json:"title"`
	Data  []models.Session `json:"data"`
}

// Repository is the single owner of the sessions table. All reads and writes
// go through it; the query layer above only mirrors its results in cache.
type Repository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRepository wraps a database handle. A nil logger disables logging.
func NewRepository(gdb *gorm.DB, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{db: gdb, logger: logger}
}

// overlapping is the single overlap predicate used by every bucketed query: a
// session overlaps [start, end] iff start_date <= end AND end_date >= start.
func overlapping(start, end int64) func(tx *gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where("start_date <= ? AND end_date >= ?", end, start)
	}
}

// likePattern builds the case-insensitive substring pattern for name search.
// An empty search matches everything.
func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}

// GetAll returns all sessions ordered by start date, newest first.
func (r *Repository) GetAll(ctx context.Context) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.WithContext(ctx).Order("start_date DESC").Find(&sessions).Error
	if err != nil {
		r.logger.Error("failed to fetch sessions", zap.Error(err))
		return nil, storeErr("get all", err)
	}
	return sessions, nil
}

// GetByID returns a single session, or nil when no row has that id.
func (r *Repository) GetByID(ctx context.Context, id uint) (*models.Session, error) {
	if id == 0 {
		return nil, invalidf("valid session id is required")
	}

	var session models.Session
	err := r.db.WithContext(ctx).First(&session, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to fetch session", zap.Uint("id", id), zap.Error(err))
		return nil, storeErr("get by id", err)
	}
	return &session, nil
}

// FirstSession returns the session with the earliest start date, or nil when
// the store is empty. PastSessions uses it to anchor its day range.
func (r *Repository) FirstSession(ctx context.Context) (*models.Session, error) {
	var sessions []models.Session
	err := r.db.WithContext(ctx).Order("start_date ASC").Limit(1).Find(&sessions).Error
	if err != nil {
		r.logger.Error("failed to fetch first session", zap.Error(err))
		return nil, storeErr("get first", err)
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return &sessions[0], nil
}

// Insert creates a new session and returns the stored row with its assigned id.
func (r *Repository) Insert(ctx context.Context, req CreateSessionRequest) (*models.Session, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, invalidf("start date and end date are required")
	}

	status := req.Status
	if status == "" {
		status = models.StatusUpcoming
	}
	if !status.IsValid() {
		return nil, invalidf("unknown status %q", status)
	}

	// Display logic assumes end_time is after start_time, but the layer does
	// not hard-enforce it.
	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.EndTime.After(req.StartTime) {
		r.logger.Warn("session end time is not after start time",
			zap.Time("start_time", req.StartTime),
			zap.Time("end_time", req.EndTime))
	}

	session := models.Session{
		Name:        req.Name,
		Category:    req.Category,
		StartDate:   req.StartDate.UnixMilli(),
		EndDate:     req.EndDate.UnixMilli(),
		Timezone:    req.Timezone,
		Reminder:    req.Reminder,
		Repetition:  req.Repetition,
		Mode:        req.Mode,
		Attachments: req.Attachments,
		Status:      status,
		CreatedAt:   time.Now().UnixMilli(),
	}
	if !req.StartTime.IsZero() {
		session.StartTime = req.StartTime.UnixMilli()
	}
	if !req.EndTime.IsZero() {
		session.EndTime = req.EndTime.UnixMilli()
	}
	if req.Link != "" {
		session.Link = &req.Link
	}
	if req.Location != "" {
		session.Location = &req.Location
	}
	if req.Description != "" {
		session.Description = &req.Description
	}

	if err := r.db.WithContext(ctx).Create(&session).Error; err != nil {
		r.logger.Error("failed to insert session", zap.Error(err))
		return nil, storeErr("insert", err)
	}
	return &session, nil
}

// Update applies a partial update to an existing session. It always re-stamps
// updated_at; a status change is validated against the transition table and
// re-stamps status_at.
func (r *Repository) Update(ctx context.Context, id uint, req UpdateSessionRequest) (*models.Session, error) {
	if id == 0 {
		return nil, invalidf("valid session id is required")
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, notFoundf(id)
	}

	now := time.Now().UnixMilli()
	updates := map[string]any{"updated_at": now}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.StartDate != nil {
		updates["start_date"] = req.StartDate.UnixMilli()
	}
	if req.EndDate != nil {
		updates["end_date"] = req.EndDate.UnixMilli()
	}
	if req.StartTime != nil {
		updates["start_time"] = req.StartTime.UnixMilli()
	}
	if req.EndTime != nil {
		updates["end_time"] = req.EndTime.UnixMilli()
	}
	if req.Timezone != nil {
		updates["timezone"] = *req.Timezone
	}
	if req.Reminder != nil {
		updates["reminder"] = *req.Reminder
	}
	if req.Repetition != nil {
		updates["repetition"] = *req.Repetition
	}
	if req.Mode != nil {
		updates["mode"] = *req.Mode
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Attachments != nil {
		updates["attachments"] = *req.Attachments
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, invalidf("unknown status %q", *req.Status)
		}
		if !models.CanTransition(existing.Status, *req.Status) {
			return nil, invalidf("cannot transition session from %s to %s", existing.Status, *req.Status)
		}
		if *req.Status != existing.Status {
			updates["status"] = *req.Status
			updates["status_at"] = now
		}
	}

	err = r.db.WithContext(ctx).Model(&models.Session{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		r.logger.Error("failed to update session", zap.Uint("id", id), zap.Error(err))
		return nil, storeErr("update", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a session permanently. The row must exist.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return invalidf("valid session id is required")
	}

	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return notFoundf(id)
	}

	if err := r.db.WithContext(ctx).Delete(&models.Session{}, id).Error; err != nil {
		r.logger.Error("failed to delete session", zap.Uint("id", id), zap.Error(err))
		return storeErr("delete", err)
	}
	return nil
}

// TodaySessions returns all sessions whose span overlaps today, ordered by
// start date. A session counts as today's if any part of its span does, not
// only when it starts today.
func (r *Repository) TodaySessions(ctx context.Context) ([]models.Session, error) {
	start, end := dates.DayBounds(time.Now())

	var sessions []models.Session
	err := r.db.WithContext(ctx).
		Scopes(overlapping(start.UnixMilli(), end.UnixMilli())).
		Order("start_date ASC").
		Find(&sessions).Error
	if err != nil {
		r.logger.Error("failed to fetch today's sessions", zap.Error(err))
		return nil, storeErr("get today", err)
	}
	return sessions, nil
}

// WeekSessions returns one bucket per day of the week containing the
// reference date, Sunday through Saturday, filtered by the search text.
// Always 7 buckets, empty ones included.
func (r *Repository) WeekSessions(ctx context.Context, q WeekQuery) ([]DayBucket, error) {
	ref := q.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}

	week := dates.WeekOf(ref)
	buckets := make([]DayBucket, 0, len(week.Days))
	for _, day := range week.Days {
		bucket, err := r.dayBucket(ctx, day, q.Search)
		if err != nil {
			r.logger.Error("failed to fetch week's sessions", zap.Error(err))
			return nil, storeErr("get week", err)
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// PastSessions returns one bucket per day from the earliest session's start
// date through today, filtered by the search text. An empty store yields no
// buckets.
func (r *Repository) PastSessions(ctx context.Context, search string) ([]DayBucket, error) {
	first, err := r.FirstSession(ctx)
	if err != nil {
		return nil, err
	}
	if first == nil {
		return []DayBucket{}, nil
	}

	days := dates.DaysTillNow(time.UnixMilli(first.StartDate))
	buckets := make([]DayBucket, 0, len(days))
	for _, day := range days {
		bucket, err := r.dayBucket(ctx, day, search)
		if err != nil {
			r.logger.Error("failed to fetch past sessions", zap.Error(err))
			return nil, storeErr("get past", err)
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}

// dayBucket fills the bucket for one calendar day.
func (r *Repository) dayBucket(ctx context.Context, day time.Time, search string) (DayBucket, error) {
	start, end := dates.DayBounds(day)

	var sessions []models.Session
	err := r.db.WithContext(ctx).
		Scopes(overlapping(start.UnixMilli(), end.UnixMilli())).
		Where("name LIKE ?", likePattern(search)).
		Order("start_date ASC").
		Find(&sessions).Error
	if err != nil {
		return DayBucket{}, err
	}
	return DayBucket{Title: start, Data: sessions}, nil
}

// SessionsInRange returns sessions overlapping [start, end].
func (r *Repository) SessionsInRange(ctx context.Context, start, end time.Time) ([]models.Session, error) {
	if start.IsZero() || end.IsZero() {
		return nil, invalidf("start date and end date are required")
	}
	if start.After(end) {
		return nil, invalidf("start date cannot be after end date")
	}

	var sessions []models.Session
	err := r.db.WithContext(ctx).
		Scopes(overlapping(start.UnixMilli(), end.UnixMilli())).
		Order("start_date ASC").
		Find(&sessions).Error
	if err != nil {
		r.logger.Error("failed to fetch sessions in range", zap.Error(err))
		return nil, storeErr("get range", err)
	}
	return sessions, nil
}

// SessionsByDate returns sessions overlapping the single day containing date.
func (r *Repository) SessionsByDate(ctx context.Context, date time.Time) ([]models.Session, error) {
	if date.IsZero() {
		return nil, invalidf("date is required")
	}

	start, end := dates.DayBounds(date)

	var sessions []models.Session
	err := r.db.WithContext(ctx).
		Scopes(overlapping(start.UnixMilli(), end.UnixMilli())).
		Order("start_date ASC").
		Find(&sessions).Error
	if err != nil {
		r.logger.Error("failed to fetch sessions by date", zap.Error(err))
		return nil, storeErr("get by date", err)
	}
	return sessions, nil
}

// Count returns the total number of sessions.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Session{}).Count(&count).Error
	if err != nil {
		r.logger.Error("failed to count sessions", zap.Error(err))
		return 0, storeErr("count", err)
	}
	return count, nil
}

// HealthCheck reports whether a trivial read succeeds. It never returns an
// error; a broken store degrades to false.
func (r *Repository) HealthCheck(ctx context.Context) bool {
	var sessions []models.Session
	if err := r.db.WithContext(ctx).Limit(1).Find(&sessions).Error; err != nil {
		r.logger.Error("database health check failed", zap.Error(err))
		return false
	}
	return true
}

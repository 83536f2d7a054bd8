package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Attachment describes a file attached to a session. Only the descriptor is
// persisted; the file itself lives wherever URI points.
type Attachment struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	MimeType string `json:"mime_type,omitempty"`
	Size     int64  `json:"size,omitempty"`
}

// AttachmentList is an ordered set of attachment descriptors stored as a
// single JSON blob column.
type AttachmentList []Attachment

// Value serializes the list for storage. An empty list is stored as NULL.
func (a AttachmentList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan deserializes the stored blob back into the list.
func (a *AttachmentList) Scan(src any) error {
	if src == nil {
		*a = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("attachments: cannot scan %T", src)
	}
	if len(data) == 0 {
		*a = nil
		return nil
	}
	return json.Unmarshal(data, a)
}

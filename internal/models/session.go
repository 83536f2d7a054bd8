package models

// Session represents a scheduled activity with a calendar span, category and
// lifecycle status. Calendar-day boundaries and precise instants are stored as
// epoch-millisecond integers; the timezone label is informational only and does
// not transform the stored instants.
type Session struct {
	ID        uint   `gorm:"primarykey" json:"id"`
	CreatedAt int64  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt *int64 `gorm:"autoUpdateTime:false" json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Category string `gorm:"not null" json:"category"`

	StartDate int64 `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   int64 `gorm:"column:end_date;not null" json:"end_date"`
	StartTime int64 `gorm:"column:start_time;not null" json:"start_time"`
	EndTime   int64 `gorm:"column:end_time;not null" json:"end_time"`

	Timezone   string `json:"timezone"`
	Reminder   int64  `json:"reminder"`   // seconds before start_time, 0 = at time of event
	Repetition int64  `json:"repetition"` // seconds between recurrences, 0 = does not repeat

	Mode        string  `gorm:"default:offline" json:"mode"` // online, offline
	Link        *string `json:"link"`
	Location    *string `json:"location"`
	Description *string `json:"description"`

	// Attachments are serialized as an opaque JSON blob at the storage boundary.
	Attachments AttachmentList `gorm:"type:blob" json:"attachments"`

	Status   Status `gorm:"default:upcoming" json:"status"`
	StatusAt *int64 `gorm:"column:status_at" json:"status_at"`
}

// TableName keeps the table name stable regardless of GORM pluralization rules.
func (Session) TableName() string {
	return "sessions"
}

package entity

import "time"

// ContentDocument stores one singleton content document as raw JSON.
// Version starts at 1 and increases by one on every successful write.
type ContentDocument struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"-"`
	Key       string    `gorm:"column:doc_key;uniqueIndex;size:50;not null" json:"key"`
	Payload   string    `gorm:"type:text;not null" json:"-"`
	Version   int64     `gorm:"not null;default:1" json:"version"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for ContentDocument
func (ContentDocument) TableName() string {
	return "content_documents"
}

// Models lists every entity managed by GORM migrations
func Models() []any {
	return []any{&ContentDocument{}, &BlogPost{}, &Event{}, &Contact{}}
}

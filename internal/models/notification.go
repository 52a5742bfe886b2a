package models

import "time"

// Notification — запись ленты уведомлений. Append-only: единственная
// мутация после создания — флаг IsRead.
type Notification struct {
	ID              string    `gorm:"primaryKey;size:64" json:"id"`
	Message         string    `gorm:"size:512;not null" json:"message"`
	IsRead          bool      `gorm:"not null;default:false" json:"is_read"`
	RelatedDocketID string    `gorm:"size:64;index" json:"related_docket_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

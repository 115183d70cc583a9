package models

import "time"

// Team groups users running the same challenge. IDs are UUID strings so a
// team can be joined from a shared link without exposing row counts.
type Team struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Challenge string    `gorm:"size:255" json:"challenge"`
	CreatedBy uint      `gorm:"index" json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

// Device - кассовое устройство филиала. ID - непрозрачный строковый
// идентификатор (uuid), выдаётся при создании. Уникально по (branch_id, name, os).
type Device struct {
	ID        string    `gorm:"size:255;primaryKey" json:"id"`
	BranchID  uint      `gorm:"not null;index" json:"branch_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	OS        string    `gorm:"size:100;column:os" json:"os"`
	LastSeen  time.Time `json:"last_seen"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

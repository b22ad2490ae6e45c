package models

// Branch - филиал организации. Уникален по (organization_id, name, location).
type Branch struct {
	BaseModel
	OrganizationID uint   `gorm:"not null;index" json:"organization_id"`
	Name           string `gorm:"size:255;not null" json:"name"`
	Location       string `gorm:"type:text;not null" json:"location"`

	Devices []Device `gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE" json:"-"`
}

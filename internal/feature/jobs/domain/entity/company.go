package entity

import "time"

// DefaultCompanyDomain is assigned when a job names a company the system
// has not seen before.
const DefaultCompanyDomain = "General"

// Company is created implicitly the first time a job references its name.
// Names are unique; concurrent creators are deduplicated at the store level.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Domain    string    `gorm:"size:255;not null;default:General" json:"domain"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the default gorm table name.
func (Company) TableName() string {
	return "companies"
}

package entities

import "time"

type Job struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Title          string `gorm:"not null" json:"title"`
	Company        string `gorm:"not null" json:"company"`
	Location       string `gorm:"not null" json:"location"`
	Description    string `gorm:"type:text;not null" json:"description"`
	Requirements   string `gorm:"type:text" json:"requirements"`
	Benefits       string `gorm:"type:text" json:"benefits"`
	SalaryMin      *int   `json:"salary_min"`
	SalaryMax      *int   `json:"salary_max"`
	SalaryCurrency string `gorm:"default:'VND'" json:"salary_currency"`
	JobType        string `gorm:"default:'Full-time'" json:"job_type"`
	ContactEmail   string `gorm:"not null" json:"contact_email"`
	ContactPhone   string `json:"contact_phone"`
	// no column default here: gorm skips zero values of defaulted fields
	// on insert, so an explicitly inactive job would come back active.
	// The create path fills in the default instead.
	IsActive  bool      `gorm:"not null" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package entities

import (
	"github.com/aarondl/null/v8"

	"gym-system/pkg/types"
)

type Trainer struct {
	ID               uint64      `json:"id"`
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	Email            string      `json:"email"`
	Phone            null.String `json:"phone"`
	Specialization   null.String `json:"specialization"`
	Specializations  []string    `json:"specializations"`
	Certifications   null.String `json:"certifications"`
	Status           string      `json:"status"`
	Availability     string      `json:"availability"`
	HireDate         null.Time   `json:"hire_date"`
	HourlyRate       null.Float64  `json:"hourly_rate"`
	Bio              null.String `json:"bio"`
	ProfilePhoto     null.String `json:"profile_photo"`
	CertificateFiles []string    `json:"certificate_files"`
	types.BaseEntity
}

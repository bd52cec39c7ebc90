package dto

import "github.com/aarondl/null/v8"

type CreateTrainerDTO struct {
	FirstName        string      `json:"first_name" validate:"required,notblank"`
	LastName         string      `json:"last_name" validate:"required,notblank"`
	Email            string      `json:"email" validate:"required,custom_email"`
	Phone            null.String `json:"phone" validate:"omitempty,phone_digits"`
	Specialization   string      `json:"specialization" validate:"required,notblank"`
	Specializations  []string    `json:"specializations"`
	Certifications   null.String `json:"certifications"`
	Status           null.String `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	Availability     null.String `json:"availability"`
	HireDate         null.String `json:"hire_date"`
	HourlyRate       null.Float64  `json:"hourly_rate" validate:"omitempty,gte=0"`
	Bio              null.String `json:"bio"`
	ProfilePhoto     null.String `json:"profile_photo"`
	CertificateFiles []string    `json:"certificate_files"`
}

type UpdateTrainerDTO struct {
	FirstName        string      `json:"first_name" validate:"required,notblank"`
	LastName         string      `json:"last_name" validate:"required,notblank"`
	Email            string      `json:"email" validate:"required,custom_email"`
	Phone            null.String `json:"phone" validate:"omitempty,phone_digits"`
	Specialization   string      `json:"specialization" validate:"required,notblank"`
	Specializations  []string    `json:"specializations"`
	Certifications   null.String `json:"certifications"`
	Status           null.String `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
	Availability     null.String `json:"availability"`
	HireDate         null.String `json:"hire_date"`
	HourlyRate       null.Float64  `json:"hourly_rate" validate:"omitempty,gte=0"`
	Bio              null.String `json:"bio"`
	ProfilePhoto     null.String `json:"profile_photo"`
	CertificateFiles []string    `json:"certificate_files"`
}

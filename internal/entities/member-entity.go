package entities

import (
	"github.com/aarondl/null/v8"

	"gym-system/pkg/types"
)

type Member struct {
	ID                    uint64      `json:"id"`
	FirstName             string      `json:"first_name"`
	LastName              string      `json:"last_name"`
	Email                 string      `json:"email"`
	Phone                 null.String `json:"phone"`
	DateOfBirth           null.String `json:"date_of_birth"`
	MembershipType        string      `json:"membership_type"`
	MembershipStartDate   null.String `json:"membership_start_date"`
	MembershipEndDate     null.String `json:"membership_end_date"`
	Status                string      `json:"status"`
	EmergencyContactName  null.String `json:"emergency_contact_name"`
	EmergencyContactPhone null.String `json:"emergency_contact_phone"`
	MedicalConditions     null.String `json:"medical_conditions"`
	ProfilePhoto          null.String `json:"profile_photo"`
	types.BaseEntity
}

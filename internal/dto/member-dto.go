package dto

import "github.com/aarondl/null/v8"

type CreateMemberDTO struct {
	FirstName             string      `json:"first_name" validate:"required,notblank"`
	LastName              string      `json:"last_name" validate:"required,notblank"`
	Email                 string      `json:"email" validate:"required,custom_email"`
	Phone                 null.String `json:"phone" validate:"omitempty,phone_digits"`
	DateOfBirth           null.String `json:"date_of_birth"`
	MembershipType        string      `json:"membership_type" validate:"required,oneof=basic premium vip student"`
	MembershipStartDate   null.String `json:"membership_start_date"`
	MembershipEndDate     null.String `json:"membership_end_date"`
	Status                null.String `json:"status" validate:"omitempty,oneof=active expired suspended cancelled"`
	EmergencyContactName  null.String `json:"emergency_contact_name"`
	EmergencyContactPhone null.String `json:"emergency_contact_phone" validate:"omitempty,phone_digits"`
	MedicalConditions     null.String `json:"medical_conditions"`
	ProfilePhoto          null.String `json:"profile_photo"`
}

// UpdateMemberDTO re-validates the identity fields on every write, so a
// member record can never lose its name, email or membership type.
type UpdateMemberDTO struct {
	FirstName             string      `json:"first_name" validate:"required,notblank"`
	LastName              string      `json:"last_name" validate:"required,notblank"`
	Email                 string      `json:"email" validate:"required,custom_email"`
	Phone                 null.String `json:"phone" validate:"omitempty,phone_digits"`
	DateOfBirth           null.String `json:"date_of_birth"`
	MembershipType        string      `json:"membership_type" validate:"required,oneof=basic premium vip student"`
	MembershipStartDate   null.String `json:"membership_start_date"`
	MembershipEndDate     null.String `json:"membership_end_date"`
	Status                null.String `json:"status" validate:"omitempty,oneof=active expired suspended cancelled"`
	EmergencyContactName  null.String `json:"emergency_contact_name"`
	EmergencyContactPhone null.String `json:"emergency_contact_phone" validate:"omitempty,phone_digits"`
	MedicalConditions     null.String `json:"medical_conditions"`
	ProfilePhoto          null.String `json:"profile_photo"`
}

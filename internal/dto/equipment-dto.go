package dto

import "github.com/aarondl/null/v8"

// CreateEquipmentDTO is bound from the normalized field map, so numeric
// fields arrive as JSON numbers and date fields as opaque strings the
// database parses.
type CreateEquipmentDTO struct {
	Name                string      `json:"name" validate:"required,notblank"`
	Category            string      `json:"category" validate:"required,notblank"`
	Brand               null.String `json:"brand"`
	Model               null.String `json:"model"`
	SerialNumber        null.String `json:"serial_number"`
	Quantity            null.Float64  `json:"quantity" validate:"required,gte=1"`
	PurchasePrice       null.Float64  `json:"purchase_price" validate:"omitempty,gte=0"`
	PurchaseDate        null.String `json:"purchase_date"`
	WarrantyEndDate     null.String `json:"warranty_end_date"`
	LastMaintenanceDate null.String `json:"last_maintenance_date"`
	NextMaintenanceDate null.String `json:"next_maintenance_date"`
	Condition           null.String `json:"condition" validate:"omitempty,oneof=good fair poor"`
	Status              null.String `json:"status" validate:"omitempty,oneof=operational maintenance retired"`
	Description         null.String `json:"description"`
	Location            null.String `json:"location"`
	MaintenanceNotes    null.String `json:"maintenance_notes"`
}

// UpdateEquipmentDTO replaces only the fields present in the request;
// absent fields leave the stored values untouched.
type UpdateEquipmentDTO struct {
	Name                null.String `json:"name" validate:"omitempty,notblank"`
	Category            null.String `json:"category" validate:"omitempty,notblank"`
	Brand               null.String `json:"brand"`
	Model               null.String `json:"model"`
	SerialNumber        null.String `json:"serial_number"`
	Quantity            null.Float64  `json:"quantity" validate:"omitempty,gte=1"`
	PurchasePrice       null.Float64  `json:"purchase_price" validate:"omitempty,gte=0"`
	PurchaseDate        null.String `json:"purchase_date"`
	WarrantyEndDate     null.String `json:"warranty_end_date"`
	LastMaintenanceDate null.String `json:"last_maintenance_date"`
	NextMaintenanceDate null.String `json:"next_maintenance_date"`
	Condition           null.String `json:"condition" validate:"omitempty,oneof=good fair poor"`
	Status              null.String `json:"status" validate:"omitempty,oneof=operational maintenance retired"`
	Description         null.String `json:"description"`
	Location            null.String `json:"location"`
	MaintenanceNotes    null.String `json:"maintenance_notes"`
}

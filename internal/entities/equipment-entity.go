package entities

import (
	"github.com/aarondl/null/v8"

	"gym-system/pkg/types"
)

type Equipment struct {
	ID                  uint64      `json:"id"`
	Name                string      `json:"name"`
	Category            string      `json:"category"`
	Brand               null.String `json:"brand"`
	Model               null.String `json:"model"`
	SerialNumber        null.String `json:"serial_number"`
	Quantity            int         `json:"quantity"`
	PurchasePrice       null.Float64  `json:"purchase_price"`
	PurchaseDate        null.Time   `json:"purchase_date"`
	WarrantyEndDate     null.Time   `json:"warranty_end_date"`
	LastMaintenanceDate null.Time   `json:"last_maintenance_date"`
	NextMaintenanceDate null.Time   `json:"next_maintenance_date"`
	Condition           string      `json:"condition"`
	Status              string      `json:"status"`
	ImagePath           null.String `json:"image_path"`
	Description         null.String `json:"description"`
	Location            null.String `json:"location"`
	MaintenanceNotes    null.String `json:"maintenance_notes"`
	types.BaseEntity
}

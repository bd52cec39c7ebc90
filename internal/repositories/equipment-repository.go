package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"gym-system/internal/dto"
	"gym-system/internal/entities"
	"gym-system/internal/infrastructure/bd"
	"gym-system/pkg/types"
)

const equipmentTable = "equipment"

const equipmentFields = `id, name, category, brand, model, serial_number, quantity,
	purchase_price::float8, purchase_date, warranty_end_date, last_maintenance_date,
	next_maintenance_date, condition, status, image_path, description, location,
	maintenance_notes, created_at, updated_at`

const equipmentSerialTakenMsg = "Equipment with this serial number already exists"

var equipmentFilterColumns = map[string]string{
	"category":  "category",
	"condition": "condition",
	"status":    "status",
}

type EquipmentRepositoryInterface interface {
	GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO, imagePath string) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, imagePath string) (*entities.Equipment, error)
	ClearEquipmentImage(ctx context.Context, id uint64) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id uint64) (*entities.Equipment, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row rowScanner) (*entities.Equipment, error) {
	var e entities.Equipment
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Category,
		&e.Brand,
		&e.Model,
		&e.SerialNumber,
		&e.Quantity,
		&e.PurchasePrice,
		&e.PurchaseDate,
		&e.WarrantyEndDate,
		&e.LastMaintenanceDate,
		&e.NextMaintenanceDate,
		&e.Condition,
		&e.Status,
		&e.ImagePath,
		&e.Description,
		&e.Location,
		&e.MaintenanceNotes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.CreatedAt = &createdAt
	e.UpdatedAt = &updatedAt
	return &e, nil
}

func (r *EquipmentRepository) GetEquipments(ctx context.Context, filter types.Filter) ([]entities.Equipment, error) {
	builder := qb.Select(equipmentFields).
		From(equipmentTable).
		OrderBy("created_at DESC")
	builder = bd.ApplyListParams(builder, filter, equipmentFilterColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, translatePgError(err, equipmentSerialTakenMsg)
	}
	defer rows.Close()

	list := make([]entities.Equipment, 0)
	for rows.Next() {
		item, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *item)
	}

	return list, rows.Err()
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := qb.Select(equipmentFields).
		From(equipmentTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, equipmentSerialTakenMsg)
	}
	return item, nil
}

func (r *EquipmentRepository) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO, imagePath string) (*entities.Equipment, error) {
	setMap := sq.Eq{
		"name":     payload.Name,
		"category": payload.Category,
	}

	// absent optional fields are left out so the schema defaults apply
	if payload.Quantity.Valid {
		setMap["quantity"] = int(payload.Quantity.Float64)
	}
	addNullString(setMap, "brand", payload.Brand)
	addNullString(setMap, "model", payload.Model)
	addNullString(setMap, "serial_number", payload.SerialNumber)
	addNullFloat(setMap, "purchase_price", payload.PurchasePrice)
	addNullString(setMap, "purchase_date", payload.PurchaseDate)
	addNullString(setMap, "warranty_end_date", payload.WarrantyEndDate)
	addNullString(setMap, "last_maintenance_date", payload.LastMaintenanceDate)
	addNullString(setMap, "next_maintenance_date", payload.NextMaintenanceDate)
	addNullString(setMap, "condition", payload.Condition)
	addNullString(setMap, "status", payload.Status)
	addNullString(setMap, "description", payload.Description)
	addNullString(setMap, "location", payload.Location)
	addNullString(setMap, "maintenance_notes", payload.MaintenanceNotes)
	if imagePath != "" {
		setMap["image_path"] = imagePath
	}

	query, args, err := qb.Insert(equipmentTable).
		SetMap(setMap).
		Suffix("RETURNING " + equipmentFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, equipmentSerialTakenMsg)
	}
	return item, nil
}

func (r *EquipmentRepository) UpdateEquipment(ctx context.Context, id uint64, payload dto.UpdateEquipmentDTO, imagePath string) (*entities.Equipment, error) {
	setMap := sq.Eq{}

	addNullString(setMap, "name", payload.Name)
	addNullString(setMap, "category", payload.Category)
	addNullString(setMap, "brand", payload.Brand)
	addNullString(setMap, "model", payload.Model)
	addNullString(setMap, "serial_number", payload.SerialNumber)
	if payload.Quantity.Valid {
		setMap["quantity"] = int(payload.Quantity.Float64)
	}
	addNullFloat(setMap, "purchase_price", payload.PurchasePrice)
	addNullString(setMap, "purchase_date", payload.PurchaseDate)
	addNullString(setMap, "warranty_end_date", payload.WarrantyEndDate)
	addNullString(setMap, "last_maintenance_date", payload.LastMaintenanceDate)
	addNullString(setMap, "next_maintenance_date", payload.NextMaintenanceDate)
	addNullString(setMap, "condition", payload.Condition)
	addNullString(setMap, "status", payload.Status)
	addNullString(setMap, "description", payload.Description)
	addNullString(setMap, "location", payload.Location)
	addNullString(setMap, "maintenance_notes", payload.MaintenanceNotes)
	if imagePath != "" {
		setMap["image_path"] = imagePath
	}

	query, args, err := qb.Update(equipmentTable).
		SetMap(setMap).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, equipmentSerialTakenMsg)
	}
	return item, nil
}

func (r *EquipmentRepository) ClearEquipmentImage(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := qb.Update(equipmentTable).
		Set("image_path", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, equipmentSerialTakenMsg)
	}
	return item, nil
}

// DeleteEquipment returns the removed row so the service can cascade the
// image file afterwards.
func (r *EquipmentRepository) DeleteEquipment(ctx context.Context, id uint64) (*entities.Equipment, error) {
	query, args, err := qb.Delete(equipmentTable).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + equipmentFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanEquipment(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, equipmentSerialTakenMsg)
	}
	return item, nil
}

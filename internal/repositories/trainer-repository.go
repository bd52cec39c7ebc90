package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"gym-system/internal/dto"
	"gym-system/internal/entities"
)

const trainerTable = "trainers"

const trainerFields = `id, first_name, last_name, email, phone, specialization,
	specializations, certifications, status, availability, hire_date,
	hourly_rate::float8, bio, profile_photo, certificate_files, created_at, updated_at`

const trainerEmailTakenMsg = "Trainer with this email already exists"

type TrainerRepositoryInterface interface {
	GetTrainers(ctx context.Context) ([]entities.Trainer, error)
	FindTrainer(ctx context.Context, id uint64) (*entities.Trainer, error)
	CreateTrainer(ctx context.Context, payload dto.CreateTrainerDTO) (*entities.Trainer, error)
	UpdateTrainer(ctx context.Context, id uint64, payload dto.UpdateTrainerDTO) (*entities.Trainer, error)
	DeleteTrainer(ctx context.Context, id uint64) (*entities.Trainer, error)
}

type TrainerRepository struct {
	storage *pgxpool.Pool
}

func NewTrainerRepository(storage *pgxpool.Pool) TrainerRepositoryInterface {
	return &TrainerRepository{storage: storage}
}

func scanTrainer(row rowScanner) (*entities.Trainer, error) {
	var t entities.Trainer
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&t.ID,
		&t.FirstName,
		&t.LastName,
		&t.Email,
		&t.Phone,
		&t.Specialization,
		&t.Specializations,
		&t.Certifications,
		&t.Status,
		&t.Availability,
		&t.HireDate,
		&t.HourlyRate,
		&t.Bio,
		&t.ProfilePhoto,
		&t.CertificateFiles,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.CreatedAt = &createdAt
	t.UpdatedAt = &updatedAt
	return &t, nil
}

func (r *TrainerRepository) GetTrainers(ctx context.Context) ([]entities.Trainer, error) {
	query, args, err := qb.Select(trainerFields).
		From(trainerTable).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Trainer, 0)
	for rows.Next() {
		item, err := scanTrainer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *item)
	}

	return list, rows.Err()
}

func (r *TrainerRepository) FindTrainer(ctx context.Context, id uint64) (*entities.Trainer, error) {
	query, args, err := qb.Select(trainerFields).
		From(trainerTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanTrainer(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, trainerEmailTakenMsg)
	}
	return item, nil
}

func trainerSetMap(payload dto.CreateTrainerDTO) sq.Eq {
	setMap := sq.Eq{
		"first_name":     payload.FirstName,
		"last_name":      payload.LastName,
		"email":          payload.Email,
		"specialization": payload.Specialization,
	}
	addNullString(setMap, "phone", payload.Phone)
	addNullString(setMap, "certifications", payload.Certifications)
	addNullString(setMap, "status", payload.Status)
	addNullString(setMap, "availability", payload.Availability)
	addNullString(setMap, "hire_date", payload.HireDate)
	addNullFloat(setMap, "hourly_rate", payload.HourlyRate)
	addNullString(setMap, "bio", payload.Bio)
	addNullString(setMap, "profile_photo", payload.ProfilePhoto)
	if payload.Specializations != nil {
		setMap["specializations"] = payload.Specializations
	}
	if payload.CertificateFiles != nil {
		setMap["certificate_files"] = payload.CertificateFiles
	}
	return setMap
}

func (r *TrainerRepository) CreateTrainer(ctx context.Context, payload dto.CreateTrainerDTO) (*entities.Trainer, error) {
	setMap := trainerSetMap(payload)

	query, args, err := qb.Insert(trainerTable).
		SetMap(setMap).
		Suffix("RETURNING " + trainerFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanTrainer(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, trainerEmailTakenMsg)
	}
	return item, nil
}

func (r *TrainerRepository) UpdateTrainer(ctx context.Context, id uint64, payload dto.UpdateTrainerDTO) (*entities.Trainer, error) {
	setMap := trainerSetMap(dto.CreateTrainerDTO(payload))

	query, args, err := qb.Update(trainerTable).
		SetMap(setMap).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + trainerFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanTrainer(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, trainerEmailTakenMsg)
	}
	return item, nil
}

func (r *TrainerRepository) DeleteTrainer(ctx context.Context, id uint64) (*entities.Trainer, error) {
	query, args, err := qb.Delete(trainerTable).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + trainerFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanTrainer(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, trainerEmailTakenMsg)
	}
	return item, nil
}

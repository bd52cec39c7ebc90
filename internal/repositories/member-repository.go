package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"gym-system/internal/dto"
	"gym-system/internal/entities"
)

const memberTable = "members"

const memberFields = `id, first_name, last_name, email, phone, date_of_birth,
	membership_type, membership_start_date, membership_end_date, status,
	emergency_contact_name, emergency_contact_phone, medical_conditions,
	profile_photo, created_at, updated_at`

const memberEmailTakenMsg = "Member with this email already exists"

type MemberRepositoryInterface interface {
	GetMembers(ctx context.Context) ([]entities.Member, error)
	FindMember(ctx context.Context, id uint64) (*entities.Member, error)
	CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (*entities.Member, error)
	UpdateMember(ctx context.Context, id uint64, payload dto.UpdateMemberDTO) (*entities.Member, error)
	DeleteMember(ctx context.Context, id uint64) (*entities.Member, error)
}

type MemberRepository struct {
	storage *pgxpool.Pool
}

func NewMemberRepository(storage *pgxpool.Pool) MemberRepositoryInterface {
	return &MemberRepository{storage: storage}
}

func scanMember(row rowScanner) (*entities.Member, error) {
	var m entities.Member
	var createdAt, updatedAt time.Time

	err := row.Scan(
		&m.ID,
		&m.FirstName,
		&m.LastName,
		&m.Email,
		&m.Phone,
		&m.DateOfBirth,
		&m.MembershipType,
		&m.MembershipStartDate,
		&m.MembershipEndDate,
		&m.Status,
		&m.EmergencyContactName,
		&m.EmergencyContactPhone,
		&m.MedicalConditions,
		&m.ProfilePhoto,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.CreatedAt = &createdAt
	m.UpdatedAt = &updatedAt
	return &m, nil
}

func (r *MemberRepository) GetMembers(ctx context.Context) ([]entities.Member, error) {
	query, args, err := qb.Select(memberFields).
		From(memberTable).
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

	list := make([]entities.Member, 0)
	for rows.Next() {
		item, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, *item)
	}

	return list, rows.Err()
}

func (r *MemberRepository) FindMember(ctx context.Context, id uint64) (*entities.Member, error) {
	query, args, err := qb.Select(memberFields).
		From(memberTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanMember(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, memberEmailTakenMsg)
	}
	return item, nil
}

func (r *MemberRepository) CreateMember(ctx context.Context, payload dto.CreateMemberDTO) (*entities.Member, error) {
	setMap := sq.Eq{
		"first_name":      payload.FirstName,
		"last_name":       payload.LastName,
		"email":           payload.Email,
		"membership_type": payload.MembershipType,
	}
	addNullString(setMap, "phone", payload.Phone)
	addNullString(setMap, "date_of_birth", payload.DateOfBirth)
	addNullString(setMap, "membership_start_date", payload.MembershipStartDate)
	addNullString(setMap, "membership_end_date", payload.MembershipEndDate)
	addNullString(setMap, "status", payload.Status)
	addNullString(setMap, "emergency_contact_name", payload.EmergencyContactName)
	addNullString(setMap, "emergency_contact_phone", payload.EmergencyContactPhone)
	addNullString(setMap, "medical_conditions", payload.MedicalConditions)
	addNullString(setMap, "profile_photo", payload.ProfilePhoto)

	query, args, err := qb.Insert(memberTable).
		SetMap(setMap).
		Suffix("RETURNING " + memberFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanMember(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, memberEmailTakenMsg)
	}
	return item, nil
}

func (r *MemberRepository) UpdateMember(ctx context.Context, id uint64, payload dto.UpdateMemberDTO) (*entities.Member, error) {
	setMap := sq.Eq{
		"first_name":      payload.FirstName,
		"last_name":       payload.LastName,
		"email":           payload.Email,
		"membership_type": payload.MembershipType,
	}
	addNullString(setMap, "phone", payload.Phone)
	addNullString(setMap, "date_of_birth", payload.DateOfBirth)
	addNullString(setMap, "membership_start_date", payload.MembershipStartDate)
	addNullString(setMap, "membership_end_date", payload.MembershipEndDate)
	addNullString(setMap, "status", payload.Status)
	addNullString(setMap, "emergency_contact_name", payload.EmergencyContactName)
	addNullString(setMap, "emergency_contact_phone", payload.EmergencyContactPhone)
	addNullString(setMap, "medical_conditions", payload.MedicalConditions)
	addNullString(setMap, "profile_photo", payload.ProfilePhoto)

	query, args, err := qb.Update(memberTable).
		SetMap(setMap).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + memberFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanMember(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, memberEmailTakenMsg)
	}
	return item, nil
}

func (r *MemberRepository) DeleteMember(ctx context.Context, id uint64) (*entities.Member, error) {
	query, args, err := qb.Delete(memberTable).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + memberFields).
		ToSql()
	if err != nil {
		return nil, err
	}

	item, err := scanMember(r.storage.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translatePgError(err, memberEmailTakenMsg)
	}
	return item, nil
}

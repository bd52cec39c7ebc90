package repositories

import (
	"errors"
	"net/http"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	apperrors "gym-system/pkg/errors"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type rowScanner interface {
	Scan(dest ...any) error
}

func addNullString(setMap sq.Eq, column string, value null.String) {
	if value.Valid {
		setMap[column] = value.String
	}
}

func addNullFloat(setMap sq.Eq, column string, value null.Float64) {
	if value.Valid {
		setMap[column] = value.Float64
	}
}

// translatePgError maps database failures onto the client error taxonomy:
// unique violations become 400s with the resource-specific message, other
// constraint and format violations become 400s carrying the database
// message, missing rows become ErrNotFound. Anything else passes through
// for the controller to treat as a 500.
func translatePgError(err error, uniqueMessage string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return apperrors.NewHttpError(http.StatusBadRequest, uniqueMessage, err, nil)
		case "23502", "23514":
			return apperrors.NewHttpError(http.StatusBadRequest, pgErr.Message, err, nil)
		case "22007", "22008", "22P02":
			return apperrors.NewHttpError(http.StatusBadRequest, "Invalid field value: "+pgErr.Message, err, nil)
		}
	}

	return err
}

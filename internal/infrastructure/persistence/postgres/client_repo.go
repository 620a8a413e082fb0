package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/credora/credit-analysis-service/internal/domain/model"
	"github.com/credora/credit-analysis-service/internal/domain/port"
	"github.com/credora/credit-analysis-service/internal/domain/valueobject"
)

// ClientRepo implements port.ClientRepository.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepo creates a new repository backed by PostgreSQL.
func NewClientRepo(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

const clientColumns = `
	id, identification_type, identification_number,
	first_names, last_names, email, phone, address,
	monthly_income, registered_at, updated_at`

// Save persists a client record (upsert by ID).
func (r *ClientRepo) Save(ctx context.Context, c model.Client) error {
	query := `
		INSERT INTO clients (
			id, identification_type, identification_number,
			first_names, last_names, email, phone, address,
			monthly_income, registered_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			first_names    = EXCLUDED.first_names,
			last_names     = EXCLUDED.last_names,
			email          = EXCLUDED.email,
			phone          = EXCLUDED.phone,
			address        = EXCLUDED.address,
			monthly_income = EXCLUDED.monthly_income,
			updated_at     = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		c.ID, c.IdentificationType.String(), c.IdentificationNumber,
		c.FirstNames, c.LastNames, c.Email, c.Phone, c.Address,
		c.MonthlyIncome, c.RegisteredAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save client: %w", err)
	}
	return nil
}

// FindByID retrieves a client by ID.
func (r *ClientRepo) FindByID(ctx context.Context, id string) (model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindByIdentification retrieves a client by identification number.
func (r *ClientRepo) FindByIdentification(ctx context.Context, identificationNumber string) (model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE identification_number = $1`
	return r.findOne(ctx, query, identificationNumber)
}

func (r *ClientRepo) findOne(ctx context.Context, query string, arg any) (model.Client, error) {
	row := r.pool.QueryRow(ctx, query, arg)
	c, err := scanClient(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Client{}, port.ErrNotFound
	}
	return c, err
}

func scanClient(s scannable) (model.Client, error) {
	var (
		id, idTypeStr, idNumber string
		firstNames, lastNames   string
		email, phone, address   string
		monthlyIncome           decimal.Decimal
		registeredAt, updatedAt time.Time
	)

	err := s.Scan(
		&id, &idTypeStr, &idNumber,
		&firstNames, &lastNames, &email, &phone, &address,
		&monthlyIncome, &registeredAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Client{}, err
		}
		return model.Client{}, fmt.Errorf("scan client: %w", err)
	}

	idType, err := valueobject.NewIdentificationType(idTypeStr)
	if err != nil {
		return model.Client{}, fmt.Errorf("parse identification type: %w", err)
	}

	return model.Client{
		ID:                   id,
		IdentificationType:   idType,
		IdentificationNumber: idNumber,
		FirstNames:           firstNames,
		LastNames:            lastNames,
		Email:                email,
		Phone:                phone,
		Address:              address,
		MonthlyIncome:        monthlyIncome,
		RegisteredAt:         registeredAt,
		UpdatedAt:            updatedAt,
	}, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog-backend/internal/domains/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.UserRepository {
	return &postgresRepository{pool: pool}
}

const userColumns = `
	id, email, password_hash, name,
	street, city, postal_code, country,
	created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	entity := &user.User{}
	var street, city, postalCode, country *string

	err := row.Scan(
		&entity.ID,
		&entity.Email,
		&entity.PasswordHash,
		&entity.Name,
		&street,
		&city,
		&postalCode,
		&country,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Address columns are all-or-nothing when written; any present
	// column reconstitutes the struct.
	if street != nil || city != nil || postalCode != nil || country != nil {
		entity.Address = &user.Address{
			Street:     deref(street),
			City:       deref(city),
			PostalCode: deref(postalCode),
			Country:    deref(country),
		}
	}

	return entity, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func addressColumns(a *user.Address) (street, city, postalCode, country *string) {
	if a == nil {
		return nil, nil, nil, nil
	}
	return &a.Street, &a.City, &a.PostalCode, &a.Country
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	entities := make([]*user.User, 0)
	for rows.Next() {
		entity, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	entity, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1) LIMIT 1`

	entity, err := scanUser(r.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return entity, nil
}

func (r *postgresRepository) Create(ctx context.Context, entity *user.User) (*user.User, error) {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns

	street, city, postalCode, country := addressColumns(entity.Address)

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Email,
		entity.PasswordHash,
		entity.Name,
		street,
		city,
		postalCode,
		country,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *user.User) (*user.User, error) {
	query := `
		UPDATE users SET
			email = $2, password_hash = $3, name = $4,
			street = $5, city = $6, postal_code = $7, country = $8,
			updated_at = $9
		WHERE id = $1
		RETURNING ` + userColumns

	street, city, postalCode, country := addressColumns(entity.Address)

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Email,
		entity.PasswordHash,
		entity.Name,
		street,
		city,
		postalCode,
		country,
		entity.UpdatedAt,
	)

	updated, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

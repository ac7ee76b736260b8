package user

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository is the entity-store port for users.
type UserRepository interface {
	GetAll(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail matches by field equality under the case-insensitive
	// collation, (nil, nil) when no record matches.
	FindByEmail(ctx context.Context, email string) (*User, error)

	Create(ctx context.Context, entity *User) (*User, error)
	Update(ctx context.Context, entity *User) (*User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

package user

import (
	"context"

	"github.com/google/uuid"
)

// UserService sequences validation, the email uniqueness check, password
// hashing and persistence for every user mutation.
type UserService interface {
	GetAll(ctx context.Context) ([]*UserResp, error)
	Create(ctx context.Context, req *CreateUserReq) (*UserResp, error)
	Update(ctx context.Context, req *UpdateUserReq) (*UserResp, error)
	Delete(ctx context.Context, id uuid.UUID) (*UserResp, error)
}

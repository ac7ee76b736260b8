package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-backend/internal/domains/user"
	"catalog-backend/internal/shared/utils"
	"catalog-backend/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userServiceImpl struct {
	repository user.UserRepository
	bcryptCost int
}

func NewUserService(repo user.UserRepository, bcryptCost int) user.UserService {
	return &userServiceImpl{
		repository: repo,
		bcryptCost: bcryptCost,
	}
}

func (s *userServiceImpl) GetAll(ctx context.Context) ([]*user.UserResp, error) {
	entities, err := s.repository.GetAll(ctx)
	if err != nil {
		logger.Error("user GetAll: repository failed", err)
		return nil, fmt.Errorf("get users: failed to fetch")
	}

	if len(entities) == 0 {
		return nil, user.ErrNoUsersFound
	}

	return user.UsersToResp(entities), nil
}

func (s *userServiceImpl) Create(ctx context.Context, req *user.CreateUserReq) (*user.UserResp, error) {
	if req == nil {
		return nil, fmt.Errorf("create user: invalid request")
	}

	// ========== Uniqueness check (case-insensitive email) ==========
	if err := s.checkDuplicate(ctx, req.Email, nil); err != nil {
		return nil, err
	}

	// ========== Hash password ==========
	// The plaintext never reaches the repository.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		logger.Error("user Create: password hashing failed", err)
		return nil, fmt.Errorf("create user: failed to hash password")
	}

	now := time.Now()
	entity := &user.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Name:         req.Name,
		Address:      req.Address,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.Error("user Create: repository create failed", err)
		return nil, fmt.Errorf("create user: failed to save")
	}

	logger.Info("user created", map[string]interface{}{
		"id": created.ID.String(),
	})
	return user.UserToResp(created), nil
}

func (s *userServiceImpl) Update(ctx context.Context, req *user.UpdateUserReq) (*user.UserResp, error) {
	if req == nil {
		return nil, fmt.Errorf("update user: invalid request")
	}

	id := utils.ParseStringToUUID(req.ID)
	if id == uuid.Nil {
		return nil, user.ErrUserNotFound
	}

	// ========== Load existing record ==========
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("user Update: repository get failed", err)
		return nil, fmt.Errorf("update user: failed to fetch")
	}

	// ========== Uniqueness check (self-match excluded) ==========
	if err := s.checkDuplicate(ctx, req.Email, &id); err != nil {
		return nil, err
	}

	// ========== Replace mutable fields ==========
	entity.Name = req.Name
	entity.Email = req.Email
	entity.Address = req.Address
	entity.UpdatedAt = time.Now()

	// Password is optional on update; only re-hash when provided.
	if req.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
		if err != nil {
			logger.Error("user Update: password hashing failed", err)
			return nil, fmt.Errorf("update user: failed to hash password")
		}
		entity.PasswordHash = string(passwordHash)
	}

	updated, err := s.repository.Update(ctx, entity)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("user Update: repository update failed", err)
		return nil, fmt.Errorf("update user: failed to save")
	}

	return user.UserToResp(updated), nil
}

func (s *userServiceImpl) Delete(ctx context.Context, id uuid.UUID) (*user.UserResp, error) {
	if id == uuid.Nil {
		return nil, user.ErrUserNotFound
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("user Delete: repository get failed", err)
		return nil, fmt.Errorf("delete user: failed to fetch")
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrUserNotFound
		}
		logger.Error("user Delete: repository delete failed", err)
		return nil, fmt.Errorf("delete user: failed to delete")
	}

	logger.Info("user deleted", map[string]interface{}{
		"id": entity.ID.String(),
	})
	return user.UserToResp(entity), nil
}

// checkDuplicate enforces case-insensitive email uniqueness. On update,
// a match on the record being updated is not a conflict.
func (s *userServiceImpl) checkDuplicate(ctx context.Context, email string, excludeID *uuid.UUID) error {
	dup, err := s.repository.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("user checkDuplicate: lookup failed", err)
		return fmt.Errorf("check user: failed to verify email")
	}

	if dup != nil && (excludeID == nil || dup.ID != *excludeID) {
		return user.ErrDuplicateEmail
	}

	return nil
}

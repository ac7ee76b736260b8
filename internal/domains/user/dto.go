package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateUserReq carries the POST /users body.
type CreateUserReq struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Address  *Address `json:"address"`
}

func (r CreateUserReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// UpdateUserReq carries the PATCH /users body. Password is the one
// field exempt from the full replace: absent means keep the current
// hash, present means re-hash.
type UpdateUserReq struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Address  *Address `json:"address"`
}

func (r UpdateUserReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, is.UUID),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// DeleteUserReq carries the DELETE /users body.
type DeleteUserReq struct {
	ID string `json:"id"`
}

func (r DeleteUserReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, is.UUID),
	)
}

// UserResp is the representation returned by GET /users. There is no
// password field on purpose.
type UserResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Address   *Address  `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func UserToResp(entity *User) *UserResp {
	return &UserResp{
		ID:        entity.ID.String(),
		Email:     entity.Email,
		Name:      entity.Name,
		Address:   entity.Address,
		CreatedAt: entity.CreatedAt,
		UpdatedAt: entity.UpdatedAt,
	}
}

func UsersToResp(entities []*User) []*UserResp {
	resps := make([]*UserResp, 0, len(entities))
	for _, entity := range entities {
		resps = append(resps, UserToResp(entity))
	}
	return resps
}

package category

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateCategoryReq carries the POST /categories body. Only name,
// description and slug are required; flags default to true when absent.
type CreateCategoryReq struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ParentCategoryID *string  `json:"parentCategoryId"`
	Icon             *string  `json:"icon"`
	MetaTitle        *string  `json:"metaTitle"`
	MetaDescription  *string  `json:"metaDescription"`
	MetaKeywords     []string `json:"metaKeywords"`
	IsActive         *bool    `json:"isActive"`
	IsVisible        *bool    `json:"isVisible"`
	Slug             string   `json:"slug"`
}

func (r CreateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Slug, validation.Required),
		validation.Field(&r.ParentCategoryID, is.UUID),
	)
}

// UpdateCategoryReq carries the PATCH /categories body. The update is a
// full replace, so the mutable field set is required in stricter form:
// flags must be real booleans, metaKeywords a real array, order non-zero.
type UpdateCategoryReq struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	ParentCategoryID *string  `json:"parentCategoryId"`
	Icon             *string  `json:"icon"`
	MetaTitle        *string  `json:"metaTitle"`
	MetaDescription  *string  `json:"metaDescription"`
	MetaKeywords     []string `json:"metaKeywords"`
	IsActive         *bool    `json:"isActive"`
	IsVisible        *bool    `json:"isVisible"`
	Slug             string   `json:"slug"`
	Order            int64    `json:"order"`
}

func (r UpdateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, is.UUID),
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Description, validation.Required),
		validation.Field(&r.Slug, validation.Required),
		validation.Field(&r.IsActive, validation.NotNil),
		validation.Field(&r.IsVisible, validation.NotNil),
		validation.Field(&r.MetaKeywords, validation.NotNil),
		validation.Field(&r.Order, validation.Required),
		validation.Field(&r.ParentCategoryID, is.UUID),
	)
}

// DeleteCategoryReq carries the DELETE /categories body.
type DeleteCategoryReq struct {
	ID string `json:"id"`
}

func (r DeleteCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ID, validation.Required, is.UUID),
	)
}

// CategoryResp is the representation returned by GET /categories.
type CategoryResp struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ParentCategoryID *string   `json:"parentCategoryId"`
	Icon             *string   `json:"icon,omitempty"`
	MetaTitle        *string   `json:"metaTitle,omitempty"`
	MetaDescription  *string   `json:"metaDescription,omitempty"`
	MetaKeywords     []string  `json:"metaKeywords"`
	IsActive         bool      `json:"isActive"`
	IsVisible        bool      `json:"isVisible"`
	Slug             string    `json:"slug"`
	Order            int64     `json:"order"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

func CategoryToResp(entity *Category) *CategoryResp {
	var parentID *string
	if entity.ParentCategoryID != nil {
		s := entity.ParentCategoryID.String()
		parentID = &s
	}

	return &CategoryResp{
		ID:               entity.ID.String(),
		Name:             entity.Name,
		Description:      entity.Description,
		ParentCategoryID: parentID,
		Icon:             entity.Icon,
		MetaTitle:        entity.MetaTitle,
		MetaDescription:  entity.MetaDescription,
		MetaKeywords:     entity.MetaKeywords,
		IsActive:         entity.IsActive,
		IsVisible:        entity.IsVisible,
		Slug:             entity.Slug,
		Order:            entity.Order,
		CreatedAt:        entity.CreatedAt,
		UpdatedAt:        entity.UpdatedAt,
	}
}

func CategoriesToResp(entities []*Category) []*CategoryResp {
	resps := make([]*CategoryResp, 0, len(entities))
	for _, entity := range entities {
		resps = append(resps, CategoryToResp(entity))
	}
	return resps
}

package dto

import (
	"lagos_eoi_backend/internals/features/posters/model"
)

// ============================
// Create / Update Request DTOs
// ============================

type CreatePosterRequest struct {
	Title     string  `json:"title" validate:"required,min=3"`
	Caption   *string `json:"caption"`
	ImageURL  string  `json:"imageUrl" validate:"required,url"`
	SortOrder int     `json:"sortOrder"`
	Active    *bool   `json:"active"`
}

func (r *CreatePosterRequest) ToModel() model.PosterModel {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return model.PosterModel{
		PosterTitle:     r.Title,
		PosterCaption:   r.Caption,
		PosterImageURL:  r.ImageURL,
		PosterSortOrder: r.SortOrder,
		PosterActive:    active,
	}
}

// UpdatePosterRequest uses pointers so absent fields are left untouched.
type UpdatePosterRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=3"`
	Caption   *string `json:"caption"`
	ImageURL  *string `json:"imageUrl" validate:"omitempty,url"`
	SortOrder *int    `json:"sortOrder"`
	Active    *bool   `json:"active"`
}

// Updates builds the column assignment map for a partial update.
func (r *UpdatePosterRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["poster_title"] = *r.Title
	}
	if r.Caption != nil {
		updates["poster_caption"] = *r.Caption
	}
	if r.ImageURL != nil {
		updates["poster_image_url"] = *r.ImageURL
	}
	if r.SortOrder != nil {
		updates["poster_sort_order"] = *r.SortOrder
	}
	if r.Active != nil {
		updates["poster_active"] = *r.Active
	}
	return updates
}

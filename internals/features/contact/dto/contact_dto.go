package dto

import (
	"lagos_eoi_backend/internals/features/contact/model"
)

// ============================
// Create Request DTO
// ============================

type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Contact string `json:"contact" validate:"required,min=10"`
	Message string `json:"message" validate:"required,min=20"`
}

func (r *CreateContactMessageRequest) ToModel() model.ContactMessageModel {
	return model.ContactMessageModel{
		ContactMessageName:    r.Name,
		ContactMessageContact: r.Contact,
		ContactMessageBody:    r.Message,
	}
}

// ============================
// Resolve patch DTO
// ============================

// IsResolved is a pointer so a missing or non-boolean value is
// distinguishable from an explicit false.
type UpdateResolvedRequest struct {
	IsResolved *bool `json:"isResolved"`
}

package types

import (
	"github.com/go-playground/validator/v10"
)

// IntakeMessageRequest represents a user answer submitted to an intake session.
type IntakeMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// ChatTurn represents a single prior turn of the free-form concierge chat.
type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest represents a free-form concierge chat request with optional
// recent conversation context.
type ChatRequest struct {
	Message string     `json:"message" validate:"required,min=1"`
	Context []ChatTurn `json:"context,omitempty" validate:"dive"`
}

// UpdateProfileRequest represents an update to the persisted user profile.
type UpdateProfileRequest struct {
	SelectedInsurancePlans []string `json:"selected_insurance_plans"`
	AcceptsMedicaid        bool     `json:"accepts_medicaid"`
	AcceptsMedicare        bool     `json:"accepts_medicare"`
}

// Validate validates the IntakeMessageRequest using the validator.
func (r *IntakeMessageRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

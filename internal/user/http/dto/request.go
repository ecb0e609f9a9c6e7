// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/invoices/internal/validation"
)

// OnboardUserRequest represents the API request for completing user onboarding.
type OnboardUserRequest struct {
	FirstName string `json:"firstName" form:"firstName"`
	LastName  string `json:"lastName" form:"lastName"`
	Address   string `json:"address" form:"address"`
}

// Validate validates the OnboardUserRequest using the jellydator/validation library.
func (r *OnboardUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("first name must be between 1 and 255 characters"),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("last name must be between 1 and 255 characters"),
		),
		validation.Field(&r.Address,
			validation.Required.Error("address is required"),
			appValidation.NotBlank,
			validation.Length(1, 500).Error("address must be between 1 and 500 characters"),
		),
	)
}

// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"github.com/allisson/invoices/internal/user/domain"
	"github.com/allisson/invoices/internal/user/usecase"
)

// ToOnboardUserInput converts an OnboardUserRequest DTO to a use case input.
func ToOnboardUserInput(req OnboardUserRequest) usecase.OnboardUserInput {
	return usecase.OnboardUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
	}
}

// ToUserResponse converts a domain User model to a UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Address:   user.Address,
		Onboarded: user.Onboarded(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

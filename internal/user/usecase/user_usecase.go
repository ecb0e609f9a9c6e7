// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/invoices/internal/user/domain"
	appValidation "github.com/allisson/invoices/internal/validation"
)

// OnboardUserInput contains the profile fields collected during onboarding.
type OnboardUserInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
}

// CreateUserInput contains the input data for user creation. Users are
// normally created by the external authentication flow; this input serves the
// operator CLI and tests.
type CreateUserInput struct {
	Email string `json:"email"`
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	OnboardUser(ctx context.Context, userID uuid.UUID, input OnboardUserInput) (*domain.User, error)
	CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, address string) (*domain.User, error)
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo UserRepository
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(userRepo UserRepository) UseCase {
	return &UserUseCase{userRepo: userRepo}
}

// validateOnboardUserInput validates the onboarding input using jellydator/validation.
// All three profile fields are required, non-blank strings.
func (uc *UserUseCase) validateOnboardUserInput(input OnboardUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.FirstName,
			validation.Required.Error("first name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("first name must be between 1 and 255 characters"),
		),
		validation.Field(&input.LastName,
			validation.Required.Error("last name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("last name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Address,
			validation.Required.Error("address is required"),
			appValidation.NotBlank,
			validation.Length(1, 500).Error("address must be between 1 and 500 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// OnboardUser updates exactly the three profile fields of the caller's own
// account. No other user fields are touched. Validation failures short-circuit
// before any mutation.
func (uc *UserUseCase) OnboardUser(
	ctx context.Context,
	userID uuid.UUID,
	input OnboardUserInput,
) (*domain.User, error) {
	if err := uc.validateOnboardUserInput(input); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.UpdateProfile(
		ctx,
		userID,
		strings.TrimSpace(input.FirstName),
		strings.TrimSpace(input.LastName),
		strings.TrimSpace(input.Address),
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// validateCreateUserInput validates the creation input.
func (uc *UserUseCase) validateCreateUserInput(input CreateUserInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// CreateUser registers a new user with an empty profile.
func (uc *UserUseCase) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if err := uc.validateCreateUserInput(input); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:    uuid.Must(uuid.NewV7()),
		Email: strings.TrimSpace(strings.ToLower(input.Email)),
	}

	// Repository returns domain errors (e.g., ErrUserAlreadyExists)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByID retrieves a user by ID
func (uc *UserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by email. The lookup is case-insensitive
// because emails are stored lowercased.
func (uc *UserUseCase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return uc.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

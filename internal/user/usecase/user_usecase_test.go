package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/invoices/internal/errors"
	"github.com/allisson/invoices/internal/user/domain"
	appValidation "github.com/allisson/invoices/internal/validation"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	firstName, lastName, address string,
) (*domain.User, error) {
	args := m.Called(ctx, id, firstName, lastName, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func TestUserUseCase_OnboardUser_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	input := OnboardUserInput{
		FirstName: "Jan",
		LastName:  "Marshall",
		Address:   "123 Main Street",
	}

	updated := &domain.User{
		ID:        userID,
		Email:     "jan@example.com",
		FirstName: "Jan",
		LastName:  "Marshall",
		Address:   "123 Main Street",
	}

	userRepo.On("UpdateProfile", ctx, userID, "Jan", "Marshall", "123 Main Street").
		Return(updated, nil)

	user, err := useCase.OnboardUser(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Jan", user.FirstName)
	assert.Equal(t, "Marshall", user.LastName)
	assert.Equal(t, "123 Main Street", user.Address)
	assert.True(t, user.Onboarded())
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_OnboardUser_TrimsWhitespace(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	input := OnboardUserInput{
		FirstName: "  Jan ",
		LastName:  " Marshall ",
		Address:   " 123 Main Street ",
	}

	userRepo.On("UpdateProfile", ctx, userID, "Jan", "Marshall", "123 Main Street").
		Return(&domain.User{ID: userID}, nil)

	_, err := useCase.OnboardUser(ctx, userID, input)

	require.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_OnboardUser_ValidationFailure(t *testing.T) {
	tests := []struct {
		name  string
		input OnboardUserInput
		field string
	}{
		{
			name:  "missing first name",
			input: OnboardUserInput{LastName: "Marshall", Address: "123 Main Street"},
			field: "firstName",
		},
		{
			name:  "blank last name",
			input: OnboardUserInput{FirstName: "Jan", LastName: "   ", Address: "123 Main Street"},
			field: "lastName",
		},
		{
			name:  "missing address",
			input: OnboardUserInput{FirstName: "Jan", LastName: "Marshall"},
			field: "address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &MockUserRepository{}
			useCase := NewUserUseCase(userRepo)

			user, err := useCase.OnboardUser(context.Background(), uuid.Must(uuid.NewV7()), tt.input)

			assert.Nil(t, user)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))

			var verr *appValidation.Error
			require.True(t, apperrors.As(err, &verr))
			assert.Contains(t, verr.FieldMessages(), tt.field)

			// No mutation may happen on invalid input
			userRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUserUseCase_OnboardUser_NotFound(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())

	userRepo.On("UpdateProfile", ctx, userID, "Jan", "Marshall", "123 Main Street").
		Return(nil, domain.ErrUserNotFound)

	user, err := useCase.OnboardUser(ctx, userID, OnboardUserInput{
		FirstName: "Jan",
		LastName:  "Marshall",
		Address:   "123 Main Street",
	})

	assert.Nil(t, user)
	assert.True(t, apperrors.Is(err, domain.ErrUserNotFound))
}

func TestUserUseCase_CreateUser_Success(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := useCase.CreateUser(ctx, CreateUserInput{Email: " Jan@Example.COM "})

	require.NoError(t, err)
	assert.Equal(t, "jan@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.Onboarded())
	userRepo.AssertExpectations(t)
}

func TestUserUseCase_CreateUser_InvalidEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	user, err := useCase.CreateUser(context.Background(), CreateUserInput{Email: "not-an-email"})

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserUseCase_GetUserByID(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV7())
	expected := &domain.User{ID: userID, Email: "jan@example.com"}

	userRepo.On("GetByID", ctx, userID).Return(expected, nil)

	user, err := useCase.GetUserByID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserUseCase_GetUserByEmail(t *testing.T) {
	userRepo := &MockUserRepository{}
	useCase := NewUserUseCase(userRepo)

	ctx := context.Background()
	expected := &domain.User{ID: uuid.Must(uuid.NewV7()), Email: "jan@example.com"}

	// Lookup must be performed with the normalized email
	userRepo.On("GetByEmail", ctx, "jan@example.com").Return(expected, nil)

	user, err := useCase.GetUserByEmail(ctx, " Jan@Example.COM ")

	require.NoError(t, err)
	assert.Equal(t, expected, user)
	userRepo.AssertExpectations(t)
}

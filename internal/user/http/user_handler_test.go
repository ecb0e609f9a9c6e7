package http

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/invoices/internal/auth/domain"
	authHTTP "github.com/allisson/invoices/internal/auth/http"
	"github.com/allisson/invoices/internal/httputil"
	"github.com/allisson/invoices/internal/user/domain"
	"github.com/allisson/invoices/internal/user/usecase"
)

// MockUserUseCase is a mock implementation of usecase.UseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) OnboardUser(ctx context.Context, userID uuid.UUID, input usecase.OnboardUserInput) (*domain.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) CreateUser(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserUseCase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// identityMiddleware injects a fixed identity, standing in for the session middleware.
func identityMiddleware(identity *authDomain.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := authHTTP.WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func setupUserRouter(userUseCase *MockUserUseCase, identity *authDomain.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	handler := NewUserHandler(userUseCase, logger)

	router := gin.New()
	group := router.Group("/v1")
	if identity != nil {
		group.Use(identityMiddleware(identity))
	}
	group.POST("/onboarding", handler.OnboardHandler)
	group.GET("/me", handler.MeHandler)
	return router
}

func TestUserHandler_Onboard_Success(t *testing.T) {
	userUseCase := &MockUserUseCase{}
	userID := uuid.Must(uuid.NewV7())
	identity := &authDomain.Identity{UserID: userID}
	router := setupUserRouter(userUseCase, identity)

	input := usecase.OnboardUserInput{
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
	userUseCase.On("OnboardUser", mock.Anything, userID, input).Return(updated, nil)

	body, _ := json.Marshal(map[string]string{
		"firstName": "Jan",
		"lastName":  "Marshall",
		"address":   "123 Main Street",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/onboarding", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Jan", resp["firstName"])
	assert.Equal(t, true, resp["onboarded"])
	userUseCase.AssertExpectations(t)
}

func TestUserHandler_Onboard_ValidationError(t *testing.T) {
	userUseCase := &MockUserUseCase{}
	identity := &authDomain.Identity{UserID: uuid.Must(uuid.NewV7())}
	router := setupUserRouter(userUseCase, identity)

	body, _ := json.Marshal(map[string]string{
		"firstName": "Jan",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/onboarding", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp httputil.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
	assert.Contains(t, resp.Details, "lastName")
	assert.Contains(t, resp.Details, "address")
	userUseCase.AssertNotCalled(t, "OnboardUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_Onboard_MalformedBody(t *testing.T) {
	userUseCase := &MockUserUseCase{}
	identity := &authDomain.Identity{UserID: uuid.Must(uuid.NewV7())}
	router := setupUserRouter(userUseCase, identity)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/onboarding", bytes.NewBufferString("{not-json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserHandler_Onboard_NoIdentity(t *testing.T) {
	userUseCase := &MockUserUseCase{}
	router := setupUserRouter(userUseCase, nil)

	body, _ := json.Marshal(map[string]string{
		"firstName": "Jan",
		"lastName":  "Marshall",
		"address":   "123 Main Street",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/onboarding", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	userUseCase.AssertNotCalled(t, "OnboardUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_Me_Success(t *testing.T) {
	userUseCase := &MockUserUseCase{}
	userID := uuid.Must(uuid.NewV7())
	identity := &authDomain.Identity{UserID: userID}
	router := setupUserRouter(userUseCase, identity)

	user := &domain.User{ID: userID, Email: "jan@example.com"}
	userUseCase.On("GetUserByID", mock.Anything, userID).Return(user, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jan@example.com")
}

func TestUserHandler_Me_NotFound(t *testing.T) {
	userUseCase := &MockUserUseCase{}
	userID := uuid.Must(uuid.NewV7())
	identity := &authDomain.Identity{UserID: userID}
	router := setupUserRouter(userUseCase, identity)

	userUseCase.On("GetUserByID", mock.Anything, userID).Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/invoices/internal/errors"
	"github.com/allisson/invoices/internal/user/domain"
)

func newUserRows(user *domain.User) *sqlmock.Rows {
	return sqlmock.NewRows(
		[]string{"id", "email", "first_name", "last_name", "address", "created_at", "updated_at"},
	).AddRow(
		user.ID.String(),
		user.Email,
		user.FirstName,
		user.LastName,
		user.Address,
		user.CreatedAt,
		user.UpdatedAt,
	)
}

func testUser() *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     "jan@example.com",
		FirstName: "Jan",
		LastName:  "Marshall",
		Address:   "123 Main Street",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	user := testUser()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.ID, user.Email, user.FirstName, user.LastName, user.Address).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Create(context.Background(), user)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	user := testUser()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(user.ID, user.Email, user.FirstName, user.LastName, user.Address).
		WillReturnError(apperrors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

	err = repo.Create(context.Background(), user)
	assert.True(t, apperrors.Is(err, domain.ErrUserAlreadyExists))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(user.ID).
		WillReturnRows(newUserRows(user))

	got, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.FirstName, got.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	id := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "first_name", "last_name", "address", "created_at", "updated_at"},
		))

	got, err := repo.GetByID(context.Background(), id)
	assert.Nil(t, got)
	assert.True(t, apperrors.Is(err, domain.ErrUserNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs(user.Email).
		WillReturnRows(newUserRows(user))

	got, err := repo.GetByEmail(context.Background(), user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_UpdateProfile(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	user := testUser()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET first_name = $1, last_name = $2, address = $3")).
		WithArgs(user.FirstName, user.LastName, user.Address, user.ID).
		WillReturnRows(newUserRows(user))

	got, err := repo.UpdateProfile(context.Background(), user.ID, user.FirstName, user.LastName, user.Address)
	require.NoError(t, err)
	assert.Equal(t, user.FirstName, got.FirstName)
	assert.Equal(t, user.LastName, got.LastName)
	assert.Equal(t, user.Address, got.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLUserRepository_UpdateProfile_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPostgreSQLUserRepository(db)
	id := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET first_name = $1")).
		WithArgs("Jan", "Marshall", "123 Main Street", id).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "email", "first_name", "last_name", "address", "created_at", "updated_at"},
		))

	got, err := repo.UpdateProfile(context.Background(), id, "Jan", "Marshall", "123 Main Street")
	assert.Nil(t, got)
	assert.True(t, apperrors.Is(err, domain.ErrUserNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

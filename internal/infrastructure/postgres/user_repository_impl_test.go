package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pradiptara/devconnect/internal/domain/entity"
	"github.com/pradiptara/devconnect/internal/domain/repository"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *UserRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewUserRepository(mock)
}

func TestCreateAssignsID(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("ann@example.com", "hashed", "Ann", "https://www.gravatar.com/avatar/x").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("5f9b4e12-0000-0000-0000-000000000001", now, now))

	u := &entity.User{
		Email:     "ann@example.com",
		Password:  "hashed",
		Name:      "Ann",
		AvatarURL: "https://www.gravatar.com/avatar/x",
	}
	err := repo.Create(context.Background(), u)

	require.NoError(t, err)
	assert.Equal(t, "5f9b4e12-0000-0000-0000-000000000001", u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUniqueViolation(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("ann@example.com", "hashed", "Ann", "url").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"})

	u := &entity.User{Email: "ann@example.com", Password: "hashed", Name: "Ann", AvatarURL: "url"}
	err := repo.Create(context.Background(), u)

	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePassesThroughOtherErrors(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("ann@example.com", "hashed", "Ann", "url").
		WillReturnError(errors.New("connection refused"))

	u := &entity.User{Email: "ann@example.com", Password: "hashed", Name: "Ann", AvatarURL: "url"}
	err := repo.Create(context.Background(), u)

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestGetByEmailFound(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT id, email, password_hash, name, avatar_url, created_at, updated_at`).
		WithArgs("ann@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "name", "avatar_url", "created_at", "updated_at"}).
			AddRow("id-1", "ann@example.com", "hashed", "Ann", "url", now, now))

	u, err := repo.GetByEmail(context.Background(), "ann@example.com")

	require.NoError(t, err)
	assert.Equal(t, "id-1", u.ID)
	assert.Equal(t, "Ann", u.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, name, avatar_url, created_at, updated_at`).
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.GetByEmail(context.Background(), "ghost@example.com")

	assert.Nil(t, u)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGetByIDNotFound(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, email, password_hash, name, avatar_url, created_at, updated_at`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.GetByID(context.Background(), "missing")

	assert.Nil(t, u)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

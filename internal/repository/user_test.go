package repository

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "name", "email", "password"}

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestGetUserWithEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching user", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("tristanjacobs@gmail.com").
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(int64(1), "Devin Sanders", "tristanjacobs@gmail.com", "$2a$10$FB/BOAVhpuLvpOREQVmvmezD4ED/.JBIDRh70tGevYzYzQgFId2u."))

		user, err := NewUserRepository(mock).GetUserWithEmail(ctx, "tristanjacobs@gmail.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "Devin Sanders", user.Name)
	})

	t.Run("unknown email is not an error", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("nonexistent@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns))

		user, err := NewUserRepository(mock).GetUserWithEmail(ctx, "nonexistent@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("lost connection is a query failure", func(t *testing.T) {
		cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("a@b.c").
			WillReturnError(cause)

		user, err := NewUserRepository(mock).GetUserWithEmail(ctx, "a@b.c")
		assert.Nil(t, user)
		require.Error(t, err)
		assert.True(t, errs.IsQueryFailure(err))
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, http.StatusInternalServerError, errs.StatusOf(err))
	})
}

func TestGetUserWithID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the matching user", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows(userColumns).
				AddRow(int64(42), "Eva Stanley", "sebastianguerra@ymail.com", "hash"))

		user, err := NewUserRepository(mock).GetUserWithID(ctx, 42)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "sebastianguerra@ymail.com", user.Email)
	})

	t.Run("unknown id is not an error", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
			WithArgs(int64(999)).
			WillReturnRows(pgxmock.NewRows(userColumns))

		user, err := NewUserRepository(mock).GetUserWithID(ctx, 999)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestAddUser(t *testing.T) {
	ctx := context.Background()
	input := model.NewUser{Name: "Dominic Parks", Email: "victoriablackwell@outlook.com", Password: "hash"}

	t.Run("round trips through lookup by email", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name, email, password)")).
			WithArgs(input.Name, input.Email, input.Password).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(7), input.Name, input.Email, input.Password))
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs(input.Email).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(7), input.Name, input.Email, input.Password))

		repo := NewUserRepository(mock)
		created, err := repo.AddUser(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, int64(7), created.ID)

		found, err := repo.GetUserWithEmail(ctx, input.Email)
		require.NoError(t, err)
		assert.Equal(t, created, found)
	})

	t.Run("duplicate email maps to a bad request", func(t *testing.T) {
		mock := newMockPool(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
			WithArgs(input.Name, input.Email, input.Password).
			WillReturnError(&pgconn.PgError{
				Code:           "23505",
				Severity:       "ERROR",
				Message:        `duplicate key value violates unique constraint "users_email_key"`,
				TableName:      "users",
				ConstraintName: "users_email_key",
			})

		created, err := NewUserRepository(mock).AddUser(ctx, input)
		assert.Nil(t, created)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
		assert.ErrorIs(t, err, errs.ErrUserAlreadyExists)
		assert.True(t, errs.IsQueryFailure(err))
	})
}

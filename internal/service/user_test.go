package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func nopLogger() *zerolog.Logger {
	log := zerolog.Nop()
	return &log
}

func TestUserServiceGetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("absent user is nil without error", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("GetUserWithEmail", ctx, "nobody@example.com").Return(nil, nil)

		user, err := NewUserService(nopLogger(), repo).GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
		repo.AssertExpectations(t)
	})

	t.Run("repository errors pass through", func(t *testing.T) {
		cause := errs.NewInternalServerError().WithCause(errors.New("connection reset"))
		repo := new(mockUserRepository)
		repo.On("GetUserWithEmail", ctx, "a@b.c").Return(nil, cause)

		user, err := NewUserService(nopLogger(), repo).GetByEmail(ctx, "a@b.c")
		assert.Nil(t, user)
		assert.Same(t, cause, err)
	})
}

func TestUserServiceGetByID(t *testing.T) {
	ctx := context.Background()
	want := &model.User{ID: 3, Name: "Eva Stanley", Email: "sebastianguerra@ymail.com"}

	repo := new(mockUserRepository)
	repo.On("GetUserWithID", ctx, int64(3)).Return(want, nil)

	user, err := NewUserService(nopLogger(), repo).GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, want, user)
	repo.AssertExpectations(t)
}

func TestUserServiceRegister(t *testing.T) {
	ctx := context.Background()
	input := model.NewUser{Name: "Dominic Parks", Email: "victoriablackwell@outlook.com", Password: "hash"}

	t.Run("stores a new user", func(t *testing.T) {
		created := &model.User{ID: 9, Name: input.Name, Email: input.Email, Password: input.Password}

		repo := new(mockUserRepository)
		repo.On("GetUserWithEmail", ctx, input.Email).Return(nil, nil)
		repo.On("AddUser", ctx, input).Return(created, nil)

		user, err := NewUserService(nopLogger(), repo).Register(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, created, user)
		repo.AssertExpectations(t)
	})

	t.Run("taken email is rejected before insert", func(t *testing.T) {
		repo := new(mockUserRepository)
		repo.On("GetUserWithEmail", ctx, input.Email).Return(&model.User{ID: 1, Email: input.Email}, nil)

		user, err := NewUserService(nopLogger(), repo).Register(ctx, input)
		assert.Nil(t, user)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)
		assert.ErrorIs(t, err, errs.ErrUserAlreadyExists)
		assert.False(t, errs.IsQueryFailure(err))
		repo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
	})

	t.Run("invalid input never reaches the repository", func(t *testing.T) {
		repo := new(mockUserRepository)

		user, err := NewUserService(nopLogger(), repo).Register(ctx, model.NewUser{Name: "x", Email: "bad"})
		assert.Nil(t, user)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.NotEmpty(t, httpErr.Errors)
		assert.Equal(t, http.StatusBadRequest, errs.StatusOf(err))
		assert.False(t, errs.IsQueryFailure(err))
		repo.AssertNotCalled(t, "GetUserWithEmail", mock.Anything, mock.Anything)
	})

	t.Run("empty input is rejected, not a query failure", func(t *testing.T) {
		repo := new(mockUserRepository)

		user, err := NewUserService(nopLogger(), repo).Register(ctx, model.NewUser{})
		assert.Nil(t, user)
		require.Error(t, err)
		assert.False(t, errs.IsQueryFailure(err))
		assert.NotErrorIs(t, err, errs.ErrUserAlreadyExists)
		repo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
	})

	t.Run("insert failure is returned", func(t *testing.T) {
		code := "USER_ALREADY_EXISTS"
		raced := errs.NewBadRequestError("A User with this Email already exists", true, &code, nil, nil)

		repo := new(mockUserRepository)
		repo.On("GetUserWithEmail", ctx, input.Email).Return(nil, nil)
		repo.On("AddUser", ctx, input).Return(nil, raced)

		user, err := NewUserService(nopLogger(), repo).Register(ctx, input)
		assert.Nil(t, user)
		assert.Same(t, raced, err)
	})
}

package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/rs/zerolog"
)

type UserService struct {
	logger *zerolog.Logger
	users  UserRepository
}

func NewUserService(logger *zerolog.Logger, users UserRepository) *UserService {
	return &UserService{logger: logger, users: users}
}

// GetByEmail returns the user registered with email, or nil.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.users.GetUserWithEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("operation", "get_user_by_email").Msg("failed to fetch user")
		return nil, err
	}

	s.logger.Debug().
		Str("operation", "get_user_by_email").
		Bool("found", user != nil).
		Msg("fetched user")
	return user, nil
}

// GetByID returns the user with id, or nil.
func (s *UserService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.users.GetUserWithID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("operation", "get_user_by_id").Int64("user_id", id).Msg("failed to fetch user")
		return nil, err
	}

	s.logger.Debug().
		Str("operation", "get_user_by_id").
		Int64("user_id", id).
		Bool("found", user != nil).
		Msg("fetched user")
	return user, nil
}

// Register validates input and stores a new user. A taken email is a 400
// USER_ALREADY_EXISTS; a concurrent insert that slips past the lookup hits
// the unique constraint and maps to the same code.
func (s *UserService) Register(ctx context.Context, input model.NewUser) (*model.User, error) {
	logger := s.logger.With().Str("operation", "register_user").Logger()

	if err := validation.Struct(input); err != nil {
		logger.Debug().Err(err).Msg("rejected invalid user")
		return nil, err
	}

	existing, err := s.users.GetUserWithEmail(ctx, input.Email)
	if err != nil {
		logger.Error().Err(err).Msg("failed to check for existing user")
		return nil, err
	}
	if existing != nil {
		code := errs.ErrUserAlreadyExists.Code
		return nil, errs.NewBadRequestError("A User with this Email already exists", true, &code, nil, nil)
	}

	created, err := s.users.AddUser(ctx, input)
	if err != nil {
		logger.Error().Err(err).Msg("failed to add user")
		return nil, err
	}

	logger.Debug().Int64("user_id", created.ID).Msg("registered user")
	return created, nil
}

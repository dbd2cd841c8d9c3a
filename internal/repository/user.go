package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	getUserWithEmailQuery = `
	SELECT id, name, email, password
	FROM users
	WHERE email = $1;`

	getUserWithIDQuery = `
	SELECT id, name, email, password
	FROM users
	WHERE id = $1;`

	addUserQuery = `
	INSERT INTO users (name, email, password)
	VALUES ($1, $2, $3)
	RETURNING id, name, email, password;`
)

type UserRepository struct {
	db database.Querier
}

func NewUserRepository(db database.Querier) *UserRepository {
	return &UserRepository{db: db}
}

// GetUserWithEmail returns the user registered with email, or nil when there
// is none.
func (r *UserRepository) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, getUserWithEmailQuery, email)
}

// GetUserWithID returns the user with the given id, or nil when there is none.
func (r *UserRepository) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	return r.getOne(ctx, getUserWithIDQuery, id)
}

// AddUser inserts a user and returns the stored row.
func (r *UserRepository) AddUser(ctx context.Context, user model.NewUser) (*model.User, error) {
	row := r.db.QueryRow(ctx, addUserQuery, user.Name, user.Email, user.Password)

	created, err := scanUser(row)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return created, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if sqlerr.IsNoRows(err) {
			return nil, nil
		}
		return nil, sqlerr.HandleError(err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password); err != nil {
		return nil, err
	}
	return &u, nil
}

// Package model holds the row shapes read from and written to the LightBnB
// schema. They are plain values: nothing here talks to the database.
package model

// User is a row of the users table.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// NewUser is the input of an insert into users. Password is stored as given;
// hashing belongs to the authentication layer.
type NewUser struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,max=255"`
}

// Package models contains data structures for the application's domain models.
package models

// User represents a registered community member.
//
// Passwords are stored in their encoded form (see internal/credential) and
// are never serialized into API responses.
type User struct {
	Username string `bson:"username" json:"username"`
	Email    string `bson:"email" json:"email"`
	Password string `bson:"password" json:"-"`
	IsAdmin  bool   `bson:"isAdmin" json:"isAdmin"`
}

// PublicUser is the subset of User echoed back by auth endpoints.
type PublicUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Public returns the response-safe view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		Username: u.Username,
		Email:    u.Email,
		IsAdmin:  u.IsAdmin,
	}
}

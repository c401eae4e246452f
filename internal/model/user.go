package model

import "time"

// User represents an application user record as stored in the
// `users` table. Users are created once at registration and read
// back by email on every authenticated request; the application
// never updates or deletes them.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name shown on the dashboard and tickets.
//  Email        – unique email address (identity key, stored lowercase).
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	CreatedAt    time.Time // users.created_at
}

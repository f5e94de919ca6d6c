package domain

import (
	"context"
	"time"
)

const (
	// MinPasswordLength is the shortest password accepted at sign-up.
	MinPasswordLength = 6
	// ClaimUserID is the session token claim carrying the user id.
	ClaimUserID = "user_id"
)

// User represents a user entity in the system.
// A user can register, login, write articles and comments, and like articles.
type User struct {
	ID        int64     // Unique identifier
	Name      string    // Display name
	Username  string    // Login username (unique)
	Password  string    // Bcrypt hashed password
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	// Insert creates a new user account.
	// Backfills the ID in the provided User object upon success.
	Insert(ctx context.Context, u *User) error

	// Update modifies an existing user's information.
	Update(ctx context.Context, u *User) error

	// GetByUsername retrieves a user by their username.
	// Used during login to verify credentials.
	GetByUsername(ctx context.Context, username string) (User, error)
}

// UserUsecase defines the business logic contract for user operations.
// Handles authentication, registration, and user management.
type UserUsecase interface {
	// Register creates a new user account.
	// Returns ErrConflict if the username already exists.
	Register(ctx context.Context, name, username, password string) (User, error)

	// Login verifies user credentials and returns a signed token.
	// Returns ErrUnauthorized if the user doesn't exist or the password is incorrect.
	Login(ctx context.Context, username, password string) (string, error)

	// EditPassword verifies user credentials and change the password by given new password
	EditPassword(ctx context.Context, id int64, oldPassword, newPassword string) error

	// SetPassword replaces the password without checking the old one.
	SetPassword(ctx context.Context, username, newPassword string) error
}

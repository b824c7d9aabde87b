package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the registration-time password policy: anything
// shorter is rejected with a 422.
const MinPasswordLength = 4

// bcryptCost is the fixed work factor applied to every stored hash.
const bcryptCost = bcrypt.DefaultCost

// UsernameAvailable reports whether no existing user holds the username.
// Checked before registration.
func UsernameAvailable(ctx context.Context, users UserStore, username string) (bool, error) {
	u, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return u == nil, nil
}

// UsernameRegistered reports whether a user with the username exists.
// Checked before login.
func UsernameRegistered(ctx context.Context, users UserStore, username string) (bool, error) {
	u, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// PasswordAcceptable reports whether the password meets the registration
// policy. Login does not apply it; existing users keep whatever they have.
func PasswordAcceptable(password string) bool {
	return len(password) >= MinPasswordLength
}

// HashPassword returns the bcrypt hash to store for a new user.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// PasswordMatches reports whether the candidate password corresponds to the
// stored hash. bcrypt's comparison is constant-time; the hash is never
// reversed.
func PasswordMatches(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

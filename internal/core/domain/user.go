package domain

import "strconv"

type User struct {
	ID       uint64
	Name     string
	Email    string
	Password string
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthResult is returned by a successful login. Token is not a credential.
type AuthResult struct {
	ID    uint64
	Name  string
	Email string
	Token string
}

// Principal is the identity a task operation runs on behalf of.
type Principal struct {
	UserID uint64
}

// FakeToken derives the placeholder token handed out at login.
func FakeToken(userID uint64) string {
	return "fake-token-" + strconv.FormatUint(userID, 10)
}

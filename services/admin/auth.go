package admin

import (
	"errors"
	"time"

	"equibook/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrBadCredentials is returned for any failed login attempt. The response
// never distinguishes a wrong email from a wrong password.
var ErrBadCredentials = errors.New("invalid email or password")

// Authenticator verifies the operator credential and issues session tokens.
// The password is compared against a bcrypt hash held in configuration; the
// check always runs server-side.
type Authenticator struct {
	AdminEmail   string
	PasswordHash string
	TokenTTL     time.Duration
}

// Login verifies the credential pair and returns a signed, expiring JWT.
func (a *Authenticator) Login(email, password string) (string, error) {
	if a.AdminEmail == "" || a.PasswordHash == "" {
		return "", errors.New("admin credential is not configured")
	}
	hashErr := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password))
	if email != a.AdminEmail || hashErr != nil {
		return "", ErrBadCredentials
	}
	return utils.GenerateAdminToken(email, uuid.New().String(), a.TokenTTL)
}

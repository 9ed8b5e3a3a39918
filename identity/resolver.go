// Package identity produces the user ID that scopes every data
// operation. Two interchangeable policies exist: Dynamic resolves the
// currently signed-in principal and provisions an anonymous one when
// none exists, Fixed always yields one configured user.
package identity

import (
	"context"
	"errors"

	"worklog/models"
)

// ErrInvalidToken reports a bearer token that failed validation. The
// transport maps it to an authentication failure rather than a server
// error.
var ErrInvalidToken = errors.New("invalid bearer token")

// Credentials carries whatever the caller presented, extracted from the
// transport by the middleware. All fields may be empty.
type Credentials struct {
	SessionID   string
	BearerToken string
}

// Principal is a resolved identity. NewSession is set when resolution
// signed the principal in, so the transport can issue a cookie.
type Principal struct {
	UserID     string
	SessionID  string
	NewSession bool
}

// Resolver yields the identity that scopes a data operation.
type Resolver interface {
	Resolve(ctx context.Context, creds Credentials) (*Principal, error)
}

// UserStore is the slice of the repository the dynamic resolver needs.
type UserStore interface {
	CreateUser(user *models.User) error
}

// SessionStore looks up and signs in principals.
type SessionStore interface {
	Get(sessionID string) (*models.Session, error)
	Create(userID string) (*models.Session, error)
}

// Fixed resolves every operation to one pre-configured user. It performs
// no lookup and cannot fail.
type Fixed struct {
	UserID string
}

func (f Fixed) Resolve(ctx context.Context, creds Credentials) (*Principal, error) {
	return &Principal{UserID: f.UserID}, nil
}

package identity

import (
	"context"
	"fmt"
	"time"

	"worklog/models"

	"github.com/google/uuid"
	"google.golang.org/api/idtoken"
)

// Dynamic resolves the currently signed-in principal. Resolution order:
// an existing session, a Google ID bearer token, and finally a freshly
// provisioned anonymous user. Resolving may therefore create a principal
// as a side effect of a read-only call.
type Dynamic struct {
	Users    UserStore
	Sessions SessionStore

	// GoogleClientID enables the bearer-token path when non-empty.
	GoogleClientID string
}

func NewDynamic(users UserStore, sessions SessionStore, googleClientID string) *Dynamic {
	return &Dynamic{
		Users:          users,
		Sessions:       sessions,
		GoogleClientID: googleClientID,
	}
}

func (d *Dynamic) Resolve(ctx context.Context, creds Credentials) (*Principal, error) {
	if creds.SessionID != "" {
		sess, err := d.Sessions.Get(creds.SessionID)
		if err != nil {
			return nil, fmt.Errorf("looking up session: %w", err)
		}
		if sess != nil {
			return &Principal{UserID: sess.UserID, SessionID: sess.ID}, nil
		}
		// Stale cookie, fall through to the remaining policies.
	}

	if creds.BearerToken != "" && d.GoogleClientID != "" {
		return d.signInWithIDToken(ctx, creds.BearerToken)
	}

	return d.signInAnonymously()
}

func (d *Dynamic) signInWithIDToken(ctx context.Context, token string) (*Principal, error) {
	payload, err := idtoken.Validate(ctx, token, d.GoogleClientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	user := &models.User{
		ID:        payload.Subject,
		Anonymous: false,
		CreatedAt: time.Now(),
	}
	if err := d.Users.CreateUser(user); err != nil {
		return nil, fmt.Errorf("recording user: %w", err)
	}

	return d.signIn(user.ID)
}

// signInAnonymously provisions a brand-new anonymous user and signs it
// in. Failure here propagates: without an identity no query can be scoped.
func (d *Dynamic) signInAnonymously() (*Principal, error) {
	user := &models.User{
		ID:        uuid.New().String(),
		Anonymous: true,
		CreatedAt: time.Now(),
	}
	if err := d.Users.CreateUser(user); err != nil {
		return nil, fmt.Errorf("provisioning anonymous user: %w", err)
	}

	return d.signIn(user.ID)
}

func (d *Dynamic) signIn(userID string) (*Principal, error) {
	sess, err := d.Sessions.Create(userID)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}

	return &Principal{UserID: userID, SessionID: sess.ID, NewSession: true}, nil
}

package authgate

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// IdentityOperations holds the identity-provider calls the dispatcher
// delegates to. Implementations must be safe for concurrent use; the
// dispatcher itself keeps no per-request state.
type IdentityOperations interface {
	// CreateUser provisions a new account and returns the username the
	// provider assigned to it.
	CreateUser(ctx context.Context, req SignupRequest) (string, error)

	// SetPermanentPassword confirms a signup by setting the account's
	// permanent password.
	SetPermanentPassword(ctx context.Context, username, password string) error

	// Authenticate exchanges credentials for a token set.
	Authenticate(ctx context.Context, username, password string) (*TokenSet, error)

	// ListUsers returns up to limit accounts in provider order.
	ListUsers(ctx context.Context, limit int32) ([]UserRecord, error)
}

// TokenSet is the token triple returned by a successful login.
type TokenSet struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
}

// UserRecord is a provider account with its raw attribute map.
type UserRecord struct {
	Username   string
	Attributes map[string]string
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTHGATE "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTHGATE "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTHGATE "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}

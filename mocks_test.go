package authgate_test

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-authgate"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockIdentityOperations implements authgate.IdentityOperations
type MockIdentityOperations struct {
	mock.Mock
}

func (m *MockIdentityOperations) CreateUser(ctx context.Context, req authgate.SignupRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockIdentityOperations) SetPermanentPassword(ctx context.Context, username, password string) error {
	args := m.Called(ctx, username, password)
	return args.Error(0)
}

func (m *MockIdentityOperations) Authenticate(ctx context.Context, username, password string) (*authgate.TokenSet, error) {
	args := m.Called(ctx, username, password)
	var tokens *authgate.TokenSet
	if v := args.Get(0); v != nil {
		tokens = v.(*authgate.TokenSet)
	}
	return tokens, args.Error(1)
}

func (m *MockIdentityOperations) ListUsers(ctx context.Context, limit int32) ([]authgate.UserRecord, error) {
	args := m.Called(ctx, limit)
	var users []authgate.UserRecord
	if v := args.Get(0); v != nil {
		users = v.([]authgate.UserRecord)
	}
	return users, args.Error(1)
}

// signToken builds an HS256 token carrying the given claims. The
// trusted inspector never checks the signature, so any key works.
func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// adminToken returns a token whose groups include admin.
func adminToken(t *testing.T) string {
	t.Helper()
	return signToken(t, jwt.MapClaims{
		"sub":            "user123",
		"cognito:groups": []string{"admin", "ops"},
	})
}

package authgate_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-authgate"
	"github.com/stretchr/testify/assert"
)

func TestRequiresAdmin(t *testing.T) {
	tests := []struct {
		action string
		want   bool
	}{
		{authgate.ActionSignup, true},
		{authgate.ActionListUsers, true},
		{authgate.ActionConfirmSignup, false},
		{authgate.ActionLogin, false},
		{"frobnicate", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, authgate.RequiresAdmin(tt.action))
		})
	}
}

func TestDispatcher_Authorized(t *testing.T) {
	dispatcher := authgate.NewDispatcher(new(MockIdentityOperations))

	t.Run("non-admin actions pass without a token", func(t *testing.T) {
		assert.True(t, dispatcher.Authorized(authgate.ActionLogin, ""))
		assert.True(t, dispatcher.Authorized(authgate.ActionConfirmSignup, ""))
	})

	t.Run("admin action without a header is denied", func(t *testing.T) {
		assert.False(t, dispatcher.Authorized(authgate.ActionSignup, ""))
	})

	t.Run("admin action with an undecodable token is denied", func(t *testing.T) {
		assert.False(t, dispatcher.Authorized(authgate.ActionSignup, "garbage"))
	})

	t.Run("admin action without the admin group is denied", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{"cognito:groups": []string{"ops"}})
		assert.False(t, dispatcher.Authorized(authgate.ActionListUsers, token))
	})

	t.Run("admin group passes the gate", func(t *testing.T) {
		assert.True(t, dispatcher.Authorized(authgate.ActionSignup, adminToken(t)))
		assert.True(t, dispatcher.Authorized(authgate.ActionListUsers, adminToken(t)))
	})

	t.Run("bearer scheme prefix is accepted", func(t *testing.T) {
		assert.True(t, dispatcher.Authorized(authgate.ActionSignup, "Bearer "+adminToken(t)))
	})
}

package authgate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifierConfig_JWKSURL(t *testing.T) {
	t.Run("derived from region and pool id", func(t *testing.T) {
		cfg := VerifierConfig{Region: "us-east-1", UserPoolID: "us-east-1_AbCdEfGhI"}
		assert.Equal(t,
			"https://cognito-idp.us-east-1.amazonaws.com/us-east-1_AbCdEfGhI/.well-known/jwks.json",
			cfg.jwksURL())
	})

	t.Run("explicit issuer wins", func(t *testing.T) {
		cfg := VerifierConfig{
			IssuerURL:  "https://issuer.example.com/",
			Region:     "us-east-1",
			UserPoolID: "ignored",
		}
		assert.Equal(t, "https://issuer.example.com/.well-known/jwks.json", cfg.jwksURL())
	})

	t.Run("empty without enough configuration", func(t *testing.T) {
		assert.Empty(t, VerifierConfig{}.jwksURL())
		assert.Empty(t, VerifierConfig{Region: "us-east-1"}.jwksURL())
		assert.Empty(t, VerifierConfig{UserPoolID: "pool"}.jwksURL())
	})
}

func TestNewVerifyingInspector_RequiresIssuer(t *testing.T) {
	inspector, err := NewVerifyingInspector(VerifierConfig{})

	assert.Nil(t, inspector)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "issuer URL or region and user pool id")
}

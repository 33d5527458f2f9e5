package authgate

import (
	"fmt"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

const cognitoIssuerFormat = "https://cognito-idp.%s.amazonaws.com/%s"

// VerifierConfig configures a VerifyingInspector.
type VerifierConfig struct {
	// IssuerURL is the token issuer. Takes precedence over
	// Region/UserPoolID when set.
	IssuerURL string

	// Region and UserPoolID identify a Cognito user pool; the issuer
	// URL is derived from them when IssuerURL is empty.
	Region     string
	UserPoolID string

	// RefreshInterval is how often the JWKS is refreshed in the
	// background. Default: 1 hour.
	RefreshInterval time.Duration

	// Logger receives JWKS refresh failures.
	Logger Logger
}

func (c VerifierConfig) jwksURL() string {
	issuer := strings.TrimSpace(c.IssuerURL)
	if issuer == "" && c.Region != "" && c.UserPoolID != "" {
		issuer = fmt.Sprintf(cognitoIssuerFormat, c.Region, c.UserPoolID)
	}
	if issuer == "" {
		return ""
	}
	return strings.TrimSuffix(issuer, "/") + "/.well-known/jwks.json"
}

// VerifyingInspector validates signature and expiry against the
// issuer's JWKS before exposing group claims. Verification failures
// surface as an empty group set, indistinguishable from a token that
// carries no groups.
type VerifyingInspector struct {
	jwks   *keyfunc.JWKS
	logger Logger
}

var _ TokenInspector = (*VerifyingInspector)(nil)

// NewVerifyingInspector fetches the JWKS and keeps it refreshed in the
// background until Close is called.
func NewVerifyingInspector(cfg VerifierConfig) (*VerifyingInspector, error) {
	url := cfg.jwksURL()
	if url == "" {
		return nil, fmt.Errorf("authgate: verifier requires an issuer URL or region and user pool id")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = defLogger{}
	}

	interval := cfg.RefreshInterval
	if interval == 0 {
		interval = time.Hour
	}

	jwks, err := keyfunc.Get(url, keyfunc.Options{
		RefreshInterval: interval,
		RefreshErrorHandler: func(err error) {
			logger.Error("jwks refresh: %v", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("authgate: failed to load JWKS from %s: %w", url, err)
	}

	return &VerifyingInspector{jwks: jwks, logger: logger}, nil
}

// Groups implements TokenInspector.
func (i *VerifyingInspector) Groups(token string) GroupSet {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, i.jwks.Keyfunc); err != nil {
		i.logger.Debug("token rejected: %v", err)
		return GroupSet{}
	}
	return groupsFromClaims(claims)
}

// Close stops the background JWKS refresh.
func (i *VerifyingInspector) Close() {
	i.jwks.EndBackground()
}

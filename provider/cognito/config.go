package cognito

import (
	"fmt"
	"strings"
)

const defaultListLimit = 60

// Config holds the user pool wiring for the provider.
type Config struct {
	// UserPoolID is the Cognito user pool identifier.
	UserPoolID string

	// ClientID is the app client used for USER_PASSWORD_AUTH.
	ClientID string

	// Region overrides the AWS region from the default credential
	// chain (optional).
	Region string

	// ListLimit caps ListUsers page size. Default: 60.
	ListLimit int32
}

func (c Config) validate() error {
	if strings.TrimSpace(c.UserPoolID) == "" {
		return fmt.Errorf("cognito: user pool id is required")
	}
	if strings.TrimSpace(c.ClientID) == "" {
		return fmt.Errorf("cognito: client id is required")
	}
	return nil
}

func (c Config) listLimit() int32 {
	if c.ListLimit > 0 {
		return c.ListLimit
	}
	return defaultListLimit
}

package cognito

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/goliatone/go-authgate"
	"github.com/nyaruka/phonenumbers"
)

// API is the subset of the Cognito identity provider client the
// facade uses.
type API interface {
	AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error)
	AdminSetUserPassword(ctx context.Context, params *cognitoidentityprovider.AdminSetUserPasswordInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminSetUserPasswordOutput, error)
	InitiateAuth(ctx context.Context, params *cognitoidentityprovider.InitiateAuthInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.InitiateAuthOutput, error)
	ListUsers(ctx context.Context, params *cognitoidentityprovider.ListUsersInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUsersOutput, error)
}

// Provider implements authgate.IdentityOperations backed by Cognito.
type Provider struct {
	client API
	config Config
}

var _ authgate.IdentityOperations = (*Provider)(nil)

// New creates a Cognito-backed provider using the default AWS
// credential chain.
func New(ctx context.Context, cfg Config) (*Provider, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("cognito: failed to load aws config: %w", err)
	}

	return NewWithClient(cognitoidentityprovider.NewFromConfig(awsCfg), cfg)
}

// NewWithClient creates a provider over an existing client.
func NewWithClient(client API, cfg Config) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("cognito: client is required")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Provider{client: client, config: cfg}, nil
}

// CreateUser implements authgate.IdentityOperations.
func (p *Provider) CreateUser(ctx context.Context, req authgate.SignupRequest) (string, error) {
	out, err := p.client.AdminCreateUser(ctx, &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId: aws.String(p.config.UserPoolID),
		Username:   aws.String(req.Username),
		UserAttributes: []types.AttributeType{
			{Name: aws.String("email"), Value: aws.String(req.Email)},
			{Name: aws.String("phone_number"), Value: aws.String(normalizePhone(req.PhoneNumber))},
			{Name: aws.String("birthdate"), Value: aws.String(req.Birthdate)},
			{Name: aws.String("gender"), Value: aws.String(req.Sex)},
			{Name: aws.String("given_name"), Value: aws.String(req.FirstName)},
			{Name: aws.String("family_name"), Value: aws.String(req.LastName)},
		},
		DesiredDeliveryMediums: []types.DeliveryMediumType{types.DeliveryMediumTypeEmail},
	})
	if err != nil {
		return "", fmt.Errorf("cognito: admin create user: %w", err)
	}

	if out.User == nil || out.User.Username == nil {
		return req.Username, nil
	}
	return aws.ToString(out.User.Username), nil
}

// SetPermanentPassword implements authgate.IdentityOperations.
func (p *Provider) SetPermanentPassword(ctx context.Context, username, password string) error {
	_, err := p.client.AdminSetUserPassword(ctx, &cognitoidentityprovider.AdminSetUserPasswordInput{
		UserPoolId: aws.String(p.config.UserPoolID),
		Username:   aws.String(username),
		Password:   aws.String(password),
		Permanent:  true,
	})
	if err != nil {
		return fmt.Errorf("cognito: admin set user password: %w", err)
	}
	return nil
}

// Authenticate implements authgate.IdentityOperations.
func (p *Provider) Authenticate(ctx context.Context, username, password string) (*authgate.TokenSet, error) {
	out, err := p.client.InitiateAuth(ctx, &cognitoidentityprovider.InitiateAuthInput{
		ClientId: aws.String(p.config.ClientID),
		AuthFlow: types.AuthFlowTypeUserPasswordAuth,
		AuthParameters: map[string]string{
			"USERNAME": username,
			"PASSWORD": password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("cognito: initiate auth: %w", err)
	}

	result := out.AuthenticationResult
	if result == nil {
		// A challenge response means the pool wants an interactive
		// flow this facade does not drive.
		return nil, fmt.Errorf("cognito: initiate auth: no authentication result")
	}

	return &authgate.TokenSet{
		IDToken:      aws.ToString(result.IdToken),
		AccessToken:  aws.ToString(result.AccessToken),
		RefreshToken: aws.ToString(result.RefreshToken),
	}, nil
}

// ListUsers implements authgate.IdentityOperations.
func (p *Provider) ListUsers(ctx context.Context, limit int32) ([]authgate.UserRecord, error) {
	if limit <= 0 {
		limit = p.config.listLimit()
	}

	out, err := p.client.ListUsers(ctx, &cognitoidentityprovider.ListUsersInput{
		UserPoolId: aws.String(p.config.UserPoolID),
		Limit:      aws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("cognito: list users: %w", err)
	}

	records := make([]authgate.UserRecord, 0, len(out.Users))
	for _, user := range out.Users {
		record := authgate.UserRecord{
			Username:   aws.ToString(user.Username),
			Attributes: make(map[string]string, len(user.Attributes)),
		}
		for _, attr := range user.Attributes {
			record.Attributes[aws.ToString(attr.Name)] = aws.ToString(attr.Value)
		}
		records = append(records, record)
	}
	return records, nil
}

// normalizePhone canonicalizes a phone number to E.164. Validation has
// already enforced the shape; numbers libphonenumber cannot parse go
// through untouched.
func normalizePhone(raw string) string {
	num, err := phonenumbers.Parse(raw, "")
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

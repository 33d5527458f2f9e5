package authgate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-print"
)

const defaultListLimit = 60

// Request is the inbound envelope the dispatcher consumes. It mirrors
// the gateway proxy event: transports adapt their native request into
// this shape and write the Response back verbatim.
type Request struct {
	Method  string
	Headers map[string]string
	Body    string
}

// payload is a decoded action request ready for validation.
type payload interface {
	Validate() error
}

type actionEntry struct {
	requiresAdmin bool
	decode        func(body []byte) (payload, error)
	invoke        func(ctx context.Context, d *Dispatcher, p payload) (any, error)
}

// Dispatcher routes action envelopes to identity operations. It keeps
// no per-request state and is safe for concurrent use as long as the
// identity operations implementation is.
type Dispatcher struct {
	ops       IdentityOperations
	inspector TokenInspector
	logger    Logger
	listLimit int32
	debug     bool
}

type DispatcherOption func(*Dispatcher)

// WithLogger overrides the default stdout logger.
func WithLogger(logger Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithTokenInspector selects how bearer tokens are decoded. Defaults
// to a TrustedInspector.
func WithTokenInspector(inspector TokenInspector) DispatcherOption {
	return func(d *Dispatcher) {
		if inspector != nil {
			d.inspector = inspector
		}
	}
}

// WithListLimit caps the number of accounts a listUsers call returns.
func WithListLimit(limit int32) DispatcherOption {
	return func(d *Dispatcher) {
		if limit > 0 {
			d.listLimit = limit
		}
	}
}

// WithDebug enables request payload dumps.
func WithDebug(debug bool) DispatcherOption {
	return func(d *Dispatcher) {
		d.debug = debug
	}
}

// NewDispatcher creates a dispatcher over the given identity
// operations.
func NewDispatcher(ops IdentityOperations, opts ...DispatcherOption) *Dispatcher {
	if ops == nil {
		panic("Missing IdentityOperations in dispatcher...")
	}

	d := &Dispatcher{
		ops:       ops,
		inspector: NewTrustedInspector(),
		logger:    defLogger{},
		listLimit: defaultListLimit,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// dispatchTable is fixed and total: any action name missing here is
// unknown by construction.
var dispatchTable = map[string]actionEntry{
	ActionSignup: {
		requiresAdmin: true,
		decode:        decodeInto[SignupRequest],
		invoke: func(ctx context.Context, d *Dispatcher, p payload) (any, error) {
			req := p.(SignupRequest)
			username, err := d.ops.CreateUser(ctx, req)
			if err != nil {
				return nil, err
			}
			return "User created: " + username, nil
		},
	},
	ActionConfirmSignup: {
		decode: decodeInto[ConfirmSignupRequest],
		invoke: func(ctx context.Context, d *Dispatcher, p payload) (any, error) {
			req := p.(ConfirmSignupRequest)
			if err := d.ops.SetPermanentPassword(ctx, req.Username, req.Password); err != nil {
				return nil, err
			}
			return "User confirmed successfully.", nil
		},
	},
	ActionLogin: {
		decode: decodeInto[LoginRequest],
		invoke: func(ctx context.Context, d *Dispatcher, p payload) (any, error) {
			req := p.(LoginRequest)
			tokens, err := d.ops.Authenticate(ctx, req.Username, req.Password)
			if err != nil {
				return nil, fmt.Errorf("Login failed: %s", err)
			}
			return map[string]string{
				"idToken":      tokens.IDToken,
				"accessToken":  tokens.AccessToken,
				"refreshToken": tokens.RefreshToken,
			}, nil
		},
	},
	ActionListUsers: {
		requiresAdmin: true,
		decode:        decodeInto[ListUsersRequest],
		invoke: func(ctx context.Context, d *Dispatcher, p payload) (any, error) {
			users, err := d.ops.ListUsers(ctx, d.listLimit)
			if err != nil {
				return nil, err
			}
			return flattenUsers(users), nil
		},
	},
}

// Dispatch runs the full request cycle: preflight short-circuit,
// decode, validate, authorize, invoke. Every outcome, including
// internal failures, comes back as a well-formed envelope.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Response {
	if strings.EqualFold(req.Method, http.MethodOptions) {
		return preflightResponse()
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(req.Body), &body); err != nil {
		return buildResponse(http.StatusBadRequest, map[string]any{
			"error": "Invalid JSON: " + err.Error(),
		})
	}

	action, _ := body["action"].(string)
	entry, ok := dispatchTable[action]
	if !ok {
		return buildResponse(http.StatusBadRequest, map[string]any{
			"error": fmt.Sprintf("Unknown action: %s", action),
		})
	}

	request, err := entry.decode([]byte(req.Body))
	if err != nil {
		return buildResponse(http.StatusBadRequest, map[string]any{
			"error": "Invalid request: " + err.Error(),
		})
	}

	if d.debug {
		d.logger.Debug("dispatch %s payload: %s", action, print.MaybePrettyJSON(request))
	}

	if err := request.Validate(); err != nil {
		d.logger.Debug("validate %s: %v", action, err)
		return buildResponse(http.StatusBadRequest, map[string]any{
			"error": err.Error(),
		})
	}

	if !d.Authorized(action, headerValue(req.Headers, "Authorization")) {
		return buildResponse(http.StatusForbidden, map[string]any{
			"error": "Forbidden: admin access required",
		})
	}

	result, err := entry.invoke(ctx, d, request)
	if err != nil {
		d.logger.Error("%s: %v", action, err)
		return buildResponse(http.StatusInternalServerError, map[string]any{
			"error": err.Error(),
		})
	}

	return buildResponse(http.StatusOK, map[string]any{"result": result})
}

// decodeInto is the tagged-union decode step: only the fields the
// action enumerates are read, unknown fields are dropped, and a
// mistyped field fails the decode.
func decodeInto[T payload](body []byte) (payload, error) {
	var req T
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return req, nil
}

// flattenUsers mirrors the provider's wire shape: username plus every
// attribute name/value at the top level of each entry.
func flattenUsers(users []UserRecord) []map[string]string {
	out := make([]map[string]string, 0, len(users))
	for _, user := range users {
		entry := make(map[string]string, len(user.Attributes)+1)
		for name, value := range user.Attributes {
			entry[name] = value
		}
		entry["username"] = user.Username
		out = append(out, entry)
	}
	return out
}

func headerValue(headers map[string]string, name string) string {
	if value, ok := headers[name]; ok {
		return value
	}
	for key, value := range headers {
		if strings.EqualFold(key, name) {
			return value
		}
	}
	return ""
}

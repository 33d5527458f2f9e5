package authgate

import "strings"

// AdminGroup is the group claim gating privileged actions.
const AdminGroup = "admin"

// RequiresAdmin reports whether an action is privileged. Unknown
// action names are rejected by the dispatch table before this check
// matters.
func RequiresAdmin(action string) bool {
	switch action {
	case ActionSignup, ActionListUsers:
		return true
	default:
		return false
	}
}

// Authorized decides whether the caller may run the action. Non-admin
// actions always pass. For admin actions the Authorization header must
// carry a token whose groups include AdminGroup; a missing header, an
// undecodable token, and a token without the group are all equivalent
// denials.
func (d *Dispatcher) Authorized(action, authorization string) bool {
	if !RequiresAdmin(action) {
		return true
	}

	token := strings.TrimSpace(authorization)
	if token == "" {
		return false
	}
	// Clients send either the raw token or the standard scheme.
	if after, ok := strings.CutPrefix(token, "Bearer "); ok {
		token = strings.TrimSpace(after)
	}

	return d.inspector.Groups(token).Has(AdminGroup)
}

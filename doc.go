// Package authgate dispatches JSON identity actions to an external
// identity provider behind a uniform response envelope.
//
// Request flow:
//   - A single envelope carries an `action` field selecting one of
//     signup, confirmSignup, login, or listUsers. The Dispatcher
//     decodes the body into the action's typed payload, runs its
//     validation rules, and checks the caller's group claims when the
//     action is privileged.
//   - Privileged actions (signup, listUsers) require the bearer token
//     in the Authorization header to carry the admin group. Missing,
//     undecodable, and non-admin tokens are all answered with the same
//     403 so callers cannot probe the gate.
//   - Identity operations themselves live behind IdentityOperations;
//     provider/cognito implements it against an AWS Cognito user pool.
//
// Token inspection:
//   - TrustedInspector reads group claims without verifying the
//     signature. Use it when a gateway authorizer in front of this
//     service has already validated the token.
//   - VerifyingInspector validates signature and expiry against the
//     user pool JWKS before exposing any claims.
//
// Every response, including CORS preflight and internal failures,
// carries the same CORS header set.
package authgate

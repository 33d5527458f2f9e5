// Package cognito implements authgate.IdentityOperations against an
// AWS Cognito user pool.
//
// The provider is a thin facade: every call maps onto a single admin
// or auth API call (AdminCreateUser, AdminSetUserPassword,
// InitiateAuth with USER_PASSWORD_AUTH, ListUsers). Pool and client
// identifiers are injected through Config at construction; nothing is
// read from the environment here. The generated SDK client sits behind
// the narrow API interface so tests can substitute a fake.
package cognito

package authgate

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Action names are matched literally; anything else is unknown.
const (
	ActionSignup        = "signup"
	ActionConfirmSignup = "confirmSignup"
	ActionLogin         = "login"
	ActionListUsers     = "listUsers"
)

// E.164: plus sign, then 2 to 15 digits with no leading zero.
var phonePattern = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// SignupRequest payload. Field names map one-to-one onto their
// patterns: birthdate is the YYYY-MM-DD date, phoneNumber the E.164
// number.
type SignupRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Birthdate   string `json:"birthdate"`
	PhoneNumber string `json:"phoneNumber"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Sex         string `json:"sex"`
}

// Validate will run validation rules
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Username,
			validation.Required.Error("Username is required"),
			validation.Length(3, 30).Error("Username must be between 3 and 30 characters"),
		),
		validation.Field(
			&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Email should be valid"),
		),
		validation.Field(
			&r.Birthdate,
			validation.Required.Error("Birthday is required"),
			validation.Date("2006-01-02").Error("Birthday must be in the format YYYY-MM-DD"),
		),
		validation.Field(
			&r.PhoneNumber,
			validation.Required.Error("Phone number is required"),
			validation.Match(phonePattern).Error("Phone number must be in E.164 format, e.g. +15551234567"),
		),
		validation.Field(
			&r.FirstName,
			validation.Required.Error("First name is required"),
		),
		validation.Field(
			&r.LastName,
			validation.Required.Error("Last name is required"),
		),
		validation.Field(
			&r.Sex,
			validation.Required.Error("Sex is required"),
			validation.In("male", "female", "other").Error("Sex must be male, female, or other"),
		),
	)
}

// ConfirmSignupRequest payload
type ConfirmSignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r ConfirmSignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("Username is required")),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

// LoginRequest payload
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("Username is required")),
		validation.Field(&r.Password, validation.Required.Error("Password is required")),
	)
}

// ListUsersRequest has no payload fields; the list limit is
// dispatcher configuration, not caller input.
type ListUsersRequest struct{}

// Validate will run validation rules
func (r ListUsersRequest) Validate() error {
	return nil
}

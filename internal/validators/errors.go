package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrInvalidUsername = errors.New("username must contain only latin letters and digits")

	ErrPasswordTooShort    = errors.New("password must be at least 15 characters long")
	ErrPasswordNoUpper     = errors.New("password must contain an uppercase letter")
	ErrPasswordNoLower     = errors.New("password must contain a lowercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain a digit")
	ErrPasswordNoSpecial   = errors.New("password must contain a special character")
	ErrPasswordInvalidChar = errors.New("password contains a character that is not allowed")

	ErrEmptyServiceName = errors.New("service name is required")
	ErrEmptySecret      = errors.New("secret is required")
)

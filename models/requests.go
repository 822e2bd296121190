package models

// AccountInput carries the username and master password typed into the
// registration, sign-in and rename forms.
type AccountInput struct {
	Username string
	Password string
}

// CredentialInput carries a new credential before its secret is encrypted.
type CredentialInput struct {
	ServiceName     string
	LoginIdentifier *string
	Secret          string
}

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-auth-service/models"
)

// Field names reported in [Violations]. They match the JSON names of
// [models.User] so that clients can map messages back to form inputs.
const (
	FieldRUT      = "rut"
	FieldPassword = "password"
	FieldUsername = "username"
	FieldEmail    = "email"
)

const (
	MsgRUTRequired      = "El RUT es obligatorio"
	MsgRUTLength        = "El RUT debe tener entre 9 y 12 caracteres"
	MsgRUTFormat        = "El RUT debe tener el formato 12345678-5"
	MsgPasswordRequired = "La contraseña es obligatoria"
	MsgPasswordWeak     = "La contraseña debe tener al menos 8 caracteres, una minúscula, una mayúscula, un número y un símbolo"
	MsgPasswordTooLong  = "La contraseña no puede superar los 72 bytes"
	MsgUsernameRequired = "El nombre de usuario es obligatorio"
	MsgUsernameSpaces   = "El nombre de usuario no puede comenzar ni terminar con espacios"
	MsgEmailRequired    = "El email es obligatorio"
	MsgEmailFormat      = "El email no tiene un formato válido"
)

const (
	rutMinLength = 9
	rutMaxLength = 12

	passwordMinLength = 8
	// bcrypt ignores (newer x/crypto rejects) input beyond 72 bytes
	passwordMaxBytes = 72

	// PasswordSymbols is the set of characters accepted as the mandatory
	// password symbol.
	PasswordSymbols = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var rutPattern = regexp.MustCompile(`^\d{7,8}-[\dkK]$`)

var userFields = []string{FieldRUT, FieldPassword, FieldUsername, FieldEmail}

// UserValidator validates [models.User] candidates before registration or
// update. It is stateless and safe for concurrent use.
type UserValidator struct {
	rules map[string]func(models.User, Violations)
}

// NewUserValidator returns a [Validator] for [models.User] and *[models.User].
func NewUserValidator() Validator {
	return &UserValidator{
		rules: map[string]func(models.User, Violations){
			FieldRUT:      validateRUT,
			FieldPassword: validatePassword,
			FieldUsername: validateUsername,
			FieldEmail:    validateEmail,
		},
	}
}

// Validate implements [Validator]. When fields is empty every user field is
// checked; otherwise only the named ones are.
func (v *UserValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var user models.User
	switch u := value.(type) {
	case models.User:
		user = u
	case *models.User:
		if u == nil {
			return fmt.Errorf("%w: nil *models.User", ErrUnsupportedType)
		}
		user = *u
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}

	if len(fields) == 0 {
		fields = userFields
	}

	violations := make(Violations)
	for _, field := range fields {
		rule, ok := v.rules[field]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		rule(user, violations)
	}

	return violations.Err()
}

func validateRUT(user models.User, violations Violations) {
	rut := user.RUT
	if rut == "" {
		violations.Add(FieldRUT, MsgRUTRequired)
		return
	}

	if n := utf8.RuneCountInString(rut); n < rutMinLength || n > rutMaxLength {
		violations.Add(FieldRUT, MsgRUTLength)
	}
	if !rutPattern.MatchString(rut) {
		violations.Add(FieldRUT, MsgRUTFormat)
	}
}

func validatePassword(user models.User, violations Violations) {
	password := user.Password
	if password == "" {
		violations.Add(FieldPassword, MsgPasswordRequired)
		return
	}

	if len(password) > passwordMaxBytes {
		violations.Add(FieldPassword, MsgPasswordTooLong)
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(PasswordSymbols, r):
			hasSymbol = true
		}
	}

	if utf8.RuneCountInString(password) < passwordMinLength || !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		violations.Add(FieldPassword, MsgPasswordWeak)
	}
}

func validateUsername(user models.User, violations Violations) {
	username := user.Username
	if strings.TrimSpace(username) == "" {
		violations.Add(FieldUsername, MsgUsernameRequired)
		return
	}
	if strings.TrimSpace(username) != username {
		violations.Add(FieldUsername, MsgUsernameSpaces)
	}
}

func validateEmail(user models.User, violations Violations) {
	email := user.Email
	if strings.TrimSpace(email) == "" {
		violations.Add(FieldEmail, MsgEmailRequired)
		return
	}

	// reject display-name forms like "John <j@x.com>"
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		violations.Add(FieldEmail, MsgEmailFormat)
	}
}

// Package validate contains the pure form-validation rules for the login
// and sign-up screens. Validation runs on submit; all failing fields are
// reported at once so the views can show every error simultaneously.
package validate

import (
	"regexp"
	"strings"
)

// Field names used as keys in the error maps. They match the form field
// names so views can attach messages to inputs directly.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldPassword = "password"
)

const MinPasswordLen = 6

// Deliberately loose: local-part "@" domain-part containing a dot,
// not full RFC 5322.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Digits only, 10-15 of them.
var phoneRe = regexp.MustCompile(`^\d{10,15}$`)

// Login validates the login form. The returned map holds one message per
// failing field; an empty map means the form may be submitted.
func Login(email, password string) map[string]string {
	errs := make(map[string]string)
	checkEmail(errs, email)
	checkPassword(errs, password)
	return errs
}

// SignUp validates the sign-up form.
func SignUp(name, email, phone, password string) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(name) == "" {
		errs[FieldName] = "Name is required"
	}
	checkEmail(errs, email)
	if phone == "" {
		errs[FieldPhone] = "Phone number is required"
	} else if !phoneRe.MatchString(phone) {
		errs[FieldPhone] = "Enter a valid phone number"
	}
	checkPassword(errs, password)

	return errs
}

func checkEmail(errs map[string]string, email string) {
	if email == "" {
		errs[FieldEmail] = "Email is required"
	} else if !emailRe.MatchString(email) {
		errs[FieldEmail] = "Enter a valid email"
	}
}

func checkPassword(errs map[string]string, password string) {
	if password == "" {
		errs[FieldPassword] = "Password is required"
	} else if len(password) < MinPasswordLen {
		errs[FieldPassword] = "Password must be at least 6 characters"
	}
}

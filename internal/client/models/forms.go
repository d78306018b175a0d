package models

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// MinPasswordLength is the shortest password the registration form accepts.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// ValidationError maps form field names to messages. It never leaves the
// client: forms failing validation are not submitted.
type ValidationError map[string]string

// Fields returns the failing field names in sorted order.
func (e ValidationError) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (e ValidationError) Error() string {
	msgs := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(msgs, "; ")
}

func validateEmail(errs ValidationError, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Email is invalid"
	}
}

type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (f LoginForm) Validate() error {
	errs := ValidationError{}
	validateEmail(errs, f.Email)
	if f.Password == "" {
		errs["password"] = "Password is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterForm is sent as multipart/form-data. AvatarPath and
// CoverImagePath name local files and may be empty.
type RegisterForm struct {
	UserName        string
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	AvatarPath      string
	CoverImagePath  string
}

func (f RegisterForm) Validate() error {
	errs := ValidationError{}
	if strings.TrimSpace(f.UserName) == "" {
		errs["userName"] = "Username is required"
	}
	validateEmail(errs, f.Email)
	switch {
	case f.Password == "":
		errs["password"] = "Password is required"
	case len(f.Password) < MinPasswordLength:
		errs["password"] = fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)
	}
	if f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}
	if strings.TrimSpace(f.FullName) == "" {
		errs["fullName"] = "Full Name is required"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

const (
	maxBioLength    = 500
	maxAnswerLength = 500
	minAge          = 18
)

func ValidateRegister(email, firstName, lastName, birthDate, gender, password string) ValidationErrors {
	errs := make(ValidationErrors)

	// Email
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	// Names
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		errs.Add("first_name", "First name is required")
	} else if len(firstName) > 100 {
		errs.Add("first_name", "First name is too long")
	}

	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		errs.Add("last_name", "Last name is required")
	} else if len(lastName) > 100 {
		errs.Add("last_name", "Last name is too long")
	}

	// Birth date
	birthDate = strings.TrimSpace(birthDate)
	if birthDate == "" {
		errs.Add("birth_date", "Birth date is required")
	} else if parsed, err := time.Parse("2006-01-02", birthDate); err != nil {
		errs.Add("birth_date", "Birth date must be YYYY-MM-DD")
	} else if parsed.After(time.Now().AddDate(-minAge, 0, 0)) {
		errs.Add("birth_date", fmt.Sprintf("You must be at least %d years old", minAge))
	}

	// Gender
	switch gender {
	case "female", "male", "non_binary":
	case "":
		errs.Add("gender", "Gender is required")
	default:
		errs.Add("gender", "Gender must be female, male, or non_binary")
	}

	// Password
	validatePassword(password, errs)

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}

// ValidateProfile checks lengths only; prompt kinds are validated by the
// profile service against the catalog.
func ValidateProfile[K ~string](bio string, answers map[K]string) ValidationErrors {
	errs := make(ValidationErrors)

	if len(bio) > maxBioLength {
		errs.Add("bio", fmt.Sprintf("Bio must be at most %d characters", maxBioLength))
	}

	for kind, answer := range answers {
		if len(answer) > maxAnswerLength {
			errs.Add("answers."+string(kind), fmt.Sprintf("Answer must be at most %d characters", maxAnswerLength))
		}
	}

	return errs
}

func validatePassword(password string, errs ValidationErrors) {
	if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters")
		return
	}

	var hasUpper, hasLower, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}

	missing := []string{}
	if !hasUpper {
		missing = append(missing, "one uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "one lowercase letter")
	}
	if !hasDigit {
		missing = append(missing, "one number")
	}

	if len(missing) > 0 {
		errs.Add("password", fmt.Sprintf("Password must contain at least %s", strings.Join(missing, ", ")))
	}
}

package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegisterValid(t *testing.T) {
	errs := ValidateRegister("ana@example.com", "Ana", "Horvat", "1994-03-12", "female", "Sunset42x")
	assert.False(t, errs.HasErrors())
}

func TestValidateRegisterMissingFields(t *testing.T) {
	errs := ValidateRegister("", "", "", "", "", "")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "first_name")
	assert.Contains(t, errs, "last_name")
	assert.Contains(t, errs, "birth_date")
	assert.Contains(t, errs, "gender")
	assert.Contains(t, errs, "password")
}

func TestValidateRegisterBadEmail(t *testing.T) {
	errs := ValidateRegister("not-an-email", "Ana", "Horvat", "1994-03-12", "female", "Sunset42x")
	assert.Contains(t, errs, "email")
}

func TestValidateRegisterBadBirthDate(t *testing.T) {
	errs := ValidateRegister("ana@example.com", "Ana", "Horvat", "12.03.1994", "female", "Sunset42x")
	assert.Contains(t, errs, "birth_date")
}

func TestValidateRegisterUnderage(t *testing.T) {
	errs := ValidateRegister("ana@example.com", "Ana", "Horvat", "2015-06-01", "female", "Sunset42x")
	assert.Contains(t, errs, "birth_date")
}

func TestValidateRegisterBadGender(t *testing.T) {
	errs := ValidateRegister("ana@example.com", "Ana", "Horvat", "1994-03-12", "other", "Sunset42x")
	assert.Contains(t, errs, "gender")
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid", "Sunset42x", true},
		{"too short", "Ab1", false},
		{"no uppercase", "sunset42x", false},
		{"no lowercase", "SUNSET42X", false},
		{"no digit", "Sunsetxyz", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := make(ValidationErrors)
			validatePassword(tc.password, errs)
			assert.Equal(t, tc.valid, !errs.HasErrors())
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.False(t, ValidateLogin("ana@example.com", "whatever").HasErrors())
	assert.Contains(t, ValidateLogin("", "whatever"), "email")
	assert.Contains(t, ValidateLogin("ana@example.com", ""), "password")
}

func TestValidateProfileLengths(t *testing.T) {
	assert.False(t, ValidateProfile("short bio", map[string]string{"prompt": "short answer"}).HasErrors())

	long := strings.Repeat("x", maxBioLength+1)
	errs := ValidateProfile(long, map[string]string{"prompt": long})
	assert.Contains(t, errs, "bio")
	assert.Contains(t, errs, "answers.prompt")
}

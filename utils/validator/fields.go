package validatorx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const passwordSymbols = "@$!%*#?&"

var (
	alphaOnlyRegex    = regexp.MustCompile(`^[A-Za-z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	emailRegex        = regexp.MustCompile(`^[\w.%+-]+@[\w.-]+\.[A-Za-z]{2,}$`)
	passwordCharRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*#?&]+$`)
	countryCodeRegex  = regexp.MustCompile(`^\+\d{1,4}$`)
	mobileNumberRegex = regexp.MustCompile(`^\d{10,15}$`)
	letterRegex       = regexp.MustCompile(`[A-Za-z]`)
	digitRegex        = regexp.MustCompile(`\d`)
)

// FieldError pairs a registration field with the reason it was rejected.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return e.Reason
}

// ValidateAlpha validates alphabetic input (firstname, lastname).
func ValidateAlpha(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	value = strings.TrimSpace(value)

	if !alphaOnlyRegex.MatchString(value) {
		return fmt.Errorf("%s must contain only alphabetic characters", fieldName)
	}
	if len(value) < 2 {
		return fmt.Errorf("%s must be at least 2 characters long", fieldName)
	}
	if len(value) > 50 {
		return fmt.Errorf("%s must not exceed 50 characters", fieldName)
	}

	return nil
}

// ValidateAlphanumeric validates alphanumeric input (username).
func ValidateAlphanumeric(value, fieldName string) error {
	if value == "" {
		return fmt.Errorf("%s is required", fieldName)
	}

	value = strings.TrimSpace(value)

	if !alphanumericRegex.MatchString(value) {
		return fmt.Errorf("%s must be alphanumeric", fieldName)
	}
	if len(value) < 3 {
		return fmt.Errorf("%s must be at least 3 characters long", fieldName)
	}
	if len(value) > 30 {
		return fmt.Errorf("%s must not exceed 30 characters", fieldName)
	}

	return nil
}

// ValidateEmail validates email format and length.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("Email is required")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	if !emailRegex.MatchString(email) {
		return fmt.Errorf("Invalid email format")
	}
	if len(email) > 255 {
		return fmt.Errorf("Email must not exceed 255 characters")
	}

	return nil
}

// ValidatePassword validates password shape: 8-128 characters drawn only
// from letters, digits and @$!%*#?&, with at least one of each class.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("Password is required")
	}
	if len(password) < 8 {
		return fmt.Errorf("Password must be at least 8 characters long")
	}
	if len(password) > 128 {
		return fmt.Errorf("Password must not exceed 128 characters")
	}

	if !passwordCharRegex.MatchString(password) ||
		!letterRegex.MatchString(password) ||
		!digitRegex.MatchString(password) ||
		!strings.ContainsAny(password, passwordSymbols) {
		return fmt.Errorf("Password must be at least 8 characters with letters, numbers, and special characters (@$!%%*#?&)")
	}

	return nil
}

// ValidatePasswordsMatch validates that confirm password equals password.
func ValidatePasswordsMatch(password, confirmPassword string) error {
	if confirmPassword == "" {
		return fmt.Errorf("Confirm password is required")
	}
	if password != confirmPassword {
		return fmt.Errorf("Password and confirm password do not match")
	}
	return nil
}

// ValidateCountryCode validates country code format (+1 to +9999).
func ValidateCountryCode(countryCode string) error {
	if countryCode == "" {
		return fmt.Errorf("Country code is required")
	}

	countryCode = strings.TrimSpace(countryCode)

	if !countryCodeRegex.MatchString(countryCode) {
		return fmt.Errorf("Country code must start with + followed by 1-4 digits")
	}

	codeNumber, err := strconv.Atoi(countryCode[1:])
	if err != nil || codeNumber < 1 || codeNumber > 9999 {
		return fmt.Errorf("Country code must be between +1 and +9999")
	}

	return nil
}

// ValidateMobileNumber validates mobile number format (10-15 digits).
func ValidateMobileNumber(mobile string) error {
	if mobile == "" {
		return fmt.Errorf("Mobile number is required")
	}

	mobile = strings.TrimSpace(mobile)

	if !mobileNumberRegex.MatchString(mobile) {
		return fmt.Errorf("Mobile number must be 10-15 digits")
	}

	return nil
}

// ValidateRegistration runs every field validator against the sanitized
// registration data in a fixed field order and returns each failure as a
// (field, reason) pair. An empty slice means every field passed.
func ValidateRegistration(data map[string]string) []FieldError {
	var errs []FieldError

	if err := ValidateAlpha(data["firstname"], "First name"); err != nil {
		errs = append(errs, FieldError{Field: "firstname", Reason: err.Error()})
	}
	if err := ValidateAlpha(data["lastname"], "Last name"); err != nil {
		errs = append(errs, FieldError{Field: "lastname", Reason: err.Error()})
	}
	if err := ValidateEmail(data["email"]); err != nil {
		errs = append(errs, FieldError{Field: "email", Reason: err.Error()})
	}
	if err := ValidateAlphanumeric(data["username"], "Username"); err != nil {
		errs = append(errs, FieldError{Field: "username", Reason: err.Error()})
	}
	if err := ValidatePassword(data["password"]); err != nil {
		errs = append(errs, FieldError{Field: "password", Reason: err.Error()})
	}
	if err := ValidatePasswordsMatch(data["password"], data["confirmpassword"]); err != nil {
		errs = append(errs, FieldError{Field: "confirmpassword", Reason: err.Error()})
	}
	if err := ValidateCountryCode(data["countrycode"]); err != nil {
		errs = append(errs, FieldError{Field: "countrycode", Reason: err.Error()})
	}
	if err := ValidateMobileNumber(data["mobilenumber"]); err != nil {
		errs = append(errs, FieldError{Field: "mobilenumber", Reason: err.Error()})
	}

	return errs
}

package validatorx

import "strings"

// PasswordStrength is the result of the strength heuristic: a 0-6 score,
// a strong/weak classification and one feedback line per unmet criterion.
type PasswordStrength struct {
	Score    int
	IsStrong bool
	Feedback []string
}

// CheckPasswordStrength scores a password one point for each of: length >= 8,
// length >= 12, lowercase, uppercase, digit, symbol from @$!%*#?&.
// Strong means a score of at least 5. A strong password can still carry
// feedback for its single missing criterion.
func CheckPasswordStrength(password string) PasswordStrength {
	strength := PasswordStrength{}

	if password == "" {
		strength.Feedback = append(strength.Feedback, "Password is required")
		return strength
	}

	if len(password) >= 8 {
		strength.Score++
	} else {
		strength.Feedback = append(strength.Feedback, "Password should be at least 8 characters")
	}

	if len(password) >= 12 {
		strength.Score++
	}

	if strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		strength.Score++
	} else {
		strength.Feedback = append(strength.Feedback, "Add lowercase letters")
	}

	if strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		strength.Score++
	} else {
		strength.Feedback = append(strength.Feedback, "Add uppercase letters")
	}

	if strings.ContainsAny(password, "0123456789") {
		strength.Score++
	} else {
		strength.Feedback = append(strength.Feedback, "Add numbers")
	}

	if strings.ContainsAny(password, passwordSymbols) {
		strength.Score++
	} else {
		strength.Feedback = append(strength.Feedback, "Add special characters (@$!%*#?&)")
	}

	strength.IsStrong = strength.Score >= 5

	if len(strength.Feedback) == 0 {
		strength.Feedback = append(strength.Feedback, "Strong password")
	}

	return strength
}

package validation

import "regexp"

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// Ten digits, first digit non-zero.
	phoneRegex = regexp.MustCompile(`^[1-9][0-9]{9}$`)
)

const MinPasswordLength = 6

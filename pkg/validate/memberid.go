package validate

import "regexp"

// Member ids are externally assigned clan tags like "HJ001": a short
// uppercase prefix followed by digits.
var memberIDPattern = regexp.MustCompile(`^[A-Z]{1,4}[0-9]{1,6}$`)

func IsMemberID(s string) bool {
	return memberIDPattern.MatchString(s)
}

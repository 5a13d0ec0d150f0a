package util

// IsEmpty reports whether s is unset or has zero length.
func IsEmpty(s *string) bool {
	return s == nil || len(*s) == 0
}

// NotEmpty reports whether s is set and has at least one byte.
func NotEmpty(s *string) bool {
	return !IsEmpty(s)
}

// Safe returns the value of s, or "" if s is unset.
func Safe(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

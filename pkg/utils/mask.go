package utils

// MaskToken renders an opaque credential for display: first and last four
// characters with the middle hidden, fully hidden when too short to split.
func MaskToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return "••••••••"
	}
	return token[:4] + "••••••••" + token[len(token)-4:]
}

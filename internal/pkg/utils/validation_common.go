package utils

import "strings"

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

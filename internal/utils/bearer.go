package utils

import "strings"

const (
	bearerPrefix     = "Bearer "
	maskedPrefixSize = 15
)

// MaskedShortToken is what MaskToken returns for tokens too short to show
// a prefix of.
const MaskedShortToken = "***"

// NormalizeBearer returns token as an Authorization header value.
// A token that already starts with "Bearer " is passed through unchanged,
// any other non-blank token gets the prefix. Blank tokens yield "".
func NormalizeBearer(token string) string {
	if strings.TrimSpace(token) == "" {
		return ""
	}
	if strings.HasPrefix(token, bearerPrefix) {
		return token
	}
	return bearerPrefix + token
}

// MaskToken returns a log-safe rendering of token: its first 15 characters
// followed by "...". Tokens not longer than that are fully masked.
func MaskToken(token string) string {
	if len(token) <= maskedPrefixSize {
		return MaskedShortToken
	}
	return token[:maskedPrefixSize] + "..."
}

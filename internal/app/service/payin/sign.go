package payin

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"strings"
)

// Payin-Payout signs every payload with a double MD5 over '#'-joined fields.
// MD5 is what the provider protocol mandates; it is a wire format here, not
// a security primitive we chose.

var phoneStrip = regexp.MustCompile(`[^0-9.]+`)

// CurrencyAlias swaps between the two codes the provider alternately uses
// for the ruble (ISO "RUB" vs legacy "RUR"). Any other code passes through.
// The mapping is its own inverse.
func CurrencyAlias(code string) string {
	switch code {
	case "RUB":
		return "RUR"
	case "RUR":
		return "RUB"
	}
	return code
}

// FormatPhone strips everything except digits and dots and prefixes the
// result with '+'. Dots survive because the provider's reference
// implementation keeps them; do not tighten the character class.
func FormatPhone(raw string) string {
	return "+" + phoneStrip.ReplaceAllString(raw, "")
}

// Sign joins fields with '#' and returns
// md5(joined + "#" + md5hex(token)) as lowercase hex.
// Field order is significant and differs between the redirect payload and
// the notify callback.
func Sign(fields []string, token string) string {
	tokenDigest := md5.Sum([]byte(token))
	joined := strings.Join(fields, "#") + "#" + hex.EncodeToString(tokenDigest[:])
	digest := md5.Sum([]byte(joined))
	return hex.EncodeToString(digest[:])
}

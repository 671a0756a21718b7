package payin

import (
	"crypto/md5"
	"encoding/hex"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrencyAlias_RubleCodes(t *testing.T) {
	require.Equal(t, "RUR", CurrencyAlias("RUB"))
	require.Equal(t, "RUB", CurrencyAlias("RUR"))
}

func TestCurrencyAlias_IsInvolution(t *testing.T) {
	for _, code := range []string{"RUB", "RUR", "USD", "EUR", "KZT", "", "rub"} {
		require.Equal(t, code, CurrencyAlias(CurrencyAlias(code)), "code %q", code)
	}
}

func TestCurrencyAlias_IdentityForOtherCodes(t *testing.T) {
	for _, code := range []string{"USD", "EUR", "rur", ""} {
		require.Equal(t, code, CurrencyAlias(code))
	}
}

func TestFormatPhone(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"+7 (900) 123-45-67", "+79001234567"},
		{"8 900 123 45 67", "+89001234567"},
		{"", "+"},
		{"abc", "+"},
		// dots survive the strip, matching the provider's reference behavior
		{"7.900.1234567", "+7.900.1234567"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatPhone(tc.raw), "raw %q", tc.raw)
	}
}

func TestSign_FixedVector(t *testing.T) {
	fields := []string{"A1", "O1", "P1", "10.50", "+7900", "0", "12:00:00 01.01.2025"}
	// md5("A1#O1#P1#10.50#+7900#0#12:00:00 01.01.2025#" + md5("secret")),
	// verified against an independent implementation.
	require.Equal(t, "f656864ac115dec26f0cc6662a40ef01", Sign(fields, "secret"))
}

func TestSign_MatchesManualConstruction(t *testing.T) {
	fields := []string{"42", "1001", "14:05:09 31.12.2024", "99.90", "+79001234567"}
	token := "token-123"

	tokenDigest := md5.Sum([]byte(token))
	joined := "42#1001#14:05:09 31.12.2024#99.90#+79001234567#" + hex.EncodeToString(tokenDigest[:])
	want := md5.Sum([]byte(joined))

	require.Equal(t, hex.EncodeToString(want[:]), Sign(fields, token))
}

func TestSign_DeterministicLowercaseHex(t *testing.T) {
	fields := []string{"a", "b", "c"}
	first := Sign(fields, "secret")
	require.Equal(t, first, Sign(fields, "secret"))
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), first)
}

func TestSign_EmptyInputsAccepted(t *testing.T) {
	require.Len(t, Sign(nil, ""), 32)
	require.Len(t, Sign([]string{""}, "secret"), 32)
}

func TestSign_FieldOrderMatters(t *testing.T) {
	require.NotEqual(t,
		Sign([]string{"a", "b"}, "secret"),
		Sign([]string{"b", "a"}, "secret"),
	)
}

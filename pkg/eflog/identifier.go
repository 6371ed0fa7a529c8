package eflog

import "strings"

// PrefixLen is the length of the tag every generated test function carries
// ("test_"). Skip files list names without it.
const PrefixLen = 5

// escapes maps characters that are not valid in a Rust identifier to the
// tokens the test generator substitutes for them. Order matters for Unescape.
var escapes = []struct{ token, char string }{
	{"_minus_", "-"},
	{"_plus_", "+"},
	{"_xor_", "^"},
}

var escaper = strings.NewReplacer("-", "_minus_", "+", "_plus_", "^", "_xor_")

// Unescape restores "-", "+" and "^" from their identifier tokens.
// Replacements run in a fixed order, one token at a time.
func Unescape(s string) string {
	for _, e := range escapes {
		s = strings.ReplaceAll(s, e.token, e.char)
	}
	return s
}

// Escape is the inverse of Unescape: it rewrites a test name into the
// identifier alphabet used by the generated test functions.
func Escape(s string) string {
	return escaper.Replace(s)
}

// StripPrefix drops the first PrefixLen runes of a test function name.
// Names no longer than the prefix are returned unchanged.
func StripPrefix(s string) string {
	r := []rune(s)
	if len(r) <= PrefixLen {
		return s
	}
	return string(r[PrefixLen:])
}

// PyspecIdentifier converts a pyspec fixture reference such as
// "tests/cancun/test_x.py::test_blob[fork_Cancun-blockchain_test]" into the
// identifier the generator derives from it ("blob__fork_Cancun_minus_blockchain_test").
func PyspecIdentifier(s string) string {
	if i := strings.LastIndex(s, "/"); i >= 0 {
		s = s[i+1:]
	}
	if i := strings.LastIndex(s, PathSeparator); i >= 0 {
		s = s[i+len(PathSeparator):]
	}
	for _, r := range [][2]string{
		{"test_", ""},
		{"(", "_lpar_"},
		{")", "_rpar_"},
		{"[", "__"},
		{"]", ""},
		{"-", "_minus_"},
		{" ", "_"},
		{".", "_"},
	} {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, "_")
}

// NormalizeRevertName turns the raw name found on a "reverted:" line into the
// form skip entries use. Revert lines already omit the function prefix, so only
// unescaping is needed; pyspec references are first run through PyspecIdentifier.
func NormalizeRevertName(raw string, pyspec bool) string {
	if pyspec {
		return Unescape(PyspecIdentifier(raw))
	}
	return Unescape(raw)
}

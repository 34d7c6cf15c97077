// Package credential provides the reversible encoding used for stored
// passwords. It is an exact round-trip codec, NOT a cryptographic hash:
// Decode(Encode(s)) == s for every string s. This matches the storage
// contract the application was built around and is a documented weakness,
// not a security boundary.
package credential

import (
	"encoding/base64"
	"fmt"
)

// Encode converts a plaintext credential into its stored form.
func Encode(plaintext string) string {
	return base64.StdEncoding.EncodeToString([]byte(plaintext))
}

// Decode reverses Encode. It fails only if the input was not produced by
// Encode (e.g. a corrupted stored value).
func Decode(encoded string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("decode credential: %w", err)
	}
	return string(b), nil
}

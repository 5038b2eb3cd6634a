package formdata

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// randomBoundary generates a fresh boundary token. A random UUID gives
// 122 bits of entropy, which makes a collision with part content
// unlikely but not impossible; the content is never scanned.
func randomBoundary() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// validateBoundary checks the rules of RFC 2046 section 5.1.1: length
// between 1 and 69 characters, restricted charset.
func validateBoundary(boundary string) error {
	if len(boundary) < 1 || len(boundary) > 69 {
		return newEncodingError("", "boundary length must be 1..69 characters")
	}
	for _, b := range boundary {
		if 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z' || '0' <= b && b <= '9' {
			continue
		}
		switch b {
		case '\'', '(', ')', '+', '_', ',', '-', '.', '/', ':', '=', '?':
			continue
		}
		return newEncodingError("", fmt.Sprintf("boundary contains invalid character %q", b))
	}
	return nil
}

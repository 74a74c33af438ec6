package common

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidatePublicURL checks that raw is an absolute http(s) URL.
// Links end up in outgoing email and <img> tags, so other schemes are refused.
func ValidatePublicURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%w: malformed url", ErrInvalidInput)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: url must use http or https", ErrInvalidInput)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: url must be absolute", ErrInvalidInput)
	}
	return nil
}

// ValidateOptionalURL is ValidatePublicURL for fields that may be empty
func ValidateOptionalURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return ValidatePublicURL(raw)
}

package entity

import "net/url"

// maxURLLength caps stored URLs; upstream feeds occasionally carry garbage.
const maxURLLength = 2048

// ValidateURL checks that a URL is well-formed, uses an http or https scheme
// and has a host. Returns a ValidationError describing the first problem found.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{Field: "url", Message: "URL is too long"}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "url", Message: "URL is malformed"}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &ValidationError{Field: "url", Message: "URL must use http or https scheme"}
	}

	if parsed.Host == "" {
		return &ValidationError{Field: "url", Message: "URL must have a valid host"}
	}

	return nil
}

package entity

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// maxURLLength defines the maximum allowed length for URLs to prevent DoS attacks.
const maxURLLength = 2048

var objectIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidateURL validates the format of a URL stored with an article.
// It checks that the URL is well-formed, uses HTTP/HTTPS scheme, and has a host
// that looks like a hostname (contains a dot) or is localhost.
// Returns a ValidationError if the URL is invalid or empty.
func ValidateURL(field, rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: field, Message: "URL is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	if strings.ContainsAny(rawURL, " \t\r\n") {
		return &ValidationError{Field: field, Message: "URL must not contain whitespace"}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: "URL is malformed"}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: "URL must use http or https scheme"}
	}

	host := parsedURL.Hostname()
	if host == "" {
		return &ValidationError{Field: field, Message: "URL must have a valid host"}
	}
	if host != "localhost" && !strings.Contains(host, ".") && !strings.Contains(host, ":") {
		return &ValidationError{Field: field, Message: "URL must have a valid host"}
	}

	return nil
}

// IsObjectID reports whether s is exactly 24 hexadecimal characters.
func IsObjectID(s string) bool {
	return objectIDPattern.MatchString(s)
}

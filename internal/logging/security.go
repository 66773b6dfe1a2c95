// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package logging

import "strings"

// SanitizeToken masks a credential, showing only first and last 4 characters.
// Example: "0123456789abcdef0123" -> "0123...0123"
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

// SanitizeEmail masks an email address.
// Example: "john.doe@example.com" -> "jo***@example.com"
func SanitizeEmail(email string) string {
	if email == "" {
		return ""
	}

	atIndex := strings.Index(email, "@")
	if atIndex <= 0 {
		return "***"
	}

	localPart := email[:atIndex]
	domain := email[atIndex:]

	if len(localPart) <= 2 {
		return "***" + domain
	}
	return localPart[:2] + "***" + domain
}

// sensitiveKeys are parameter names whose values never reach a log line verbatim.
var sensitiveKeys = map[string]bool{
	"api_key":       true,
	"apikey":        true,
	"x-api-key":     true,
	"authorization": true,
	"token":         true,
	"secret":        true,
	"email_hash":    true,
	"phone":         true,
	"birth_date":    true,
}

// SanitizeValue sanitizes a value based on its key name. Comma-separated
// email lists are masked address by address.
func SanitizeValue(key, value string) string {
	if sensitiveKeys[strings.ToLower(key)] {
		return SanitizeToken(value)
	}

	if strings.Contains(value, "@") && strings.Contains(value, ".") {
		parts := strings.Split(value, ",")
		for i, part := range parts {
			parts[i] = SanitizeEmail(strings.TrimSpace(part))
		}
		return strings.Join(parts, ", ")
	}

	return truncateString(value, 200)
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

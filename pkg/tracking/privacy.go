package tracking

import "strings"

// Properties are dropped when their key names sensitive data or their value
// looks like free text. Tracked events carry labels and small numbers, never
// raw amounts, balances, transaction descriptions or personal identifiers.

const maxValueLength = 64

var blockedKeys = []string{
	"amount",
	"balance",
	"income",
	"salary",
	"transaction",
	"description",
	"memo",
	"note",
	"account",
	"iban",
	"email",
	"phone",
	"address",
	"name",
	"user",
}

// IsSensitiveKey reports whether a property key names sensitive data.
func IsSensitiveKey(key string) bool {
	lowered := strings.ToLower(key)
	for _, blocked := range blockedKeys {
		if strings.Contains(lowered, blocked) {
			return true
		}
	}

	return false
}

// IsSensitiveValue reports whether a property value looks like free text.
func IsSensitiveValue(value interface{}) bool {
	str, ok := value.(string)
	if !ok {
		return false
	}

	return len(str) > maxValueLength || strings.Count(str, " ") > 3
}

// Scrub returns a copy of the properties with sensitive entries dropped.
func Scrub(properties map[string]interface{}) map[string]interface{} {
	scrubbed := make(map[string]interface{})

	for key, value := range properties {
		if IsSensitiveKey(key) || IsSensitiveValue(value) {
			continue
		}

		scrubbed[key] = value
	}

	return scrubbed
}

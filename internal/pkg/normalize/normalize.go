package normalize

import "strings"

// Email lowercases and trims an email address so registration and login
// always compare the same canonical form. Empty input stays empty.
func Email(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Phone strips everything except digits from a phone number.
// "+66 (0) 81-234-5678" and "66081 234 5678" normalize to the same value.
func Phone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

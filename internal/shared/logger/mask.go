package logger

import "strings"

// MaskEmail keeps the first character of the local part.
// john.doe@gmail.com -> j***@gmail.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "***@***"
	}

	username := parts[0]
	domain := parts[1]

	if len(username) == 0 {
		return "***@" + domain
	}

	return username[:1] + "***@" + domain
}

// MaskPhone keeps only the last four digits.
// 010-1234-5678 -> ***-****-5678
func MaskPhone(phone string) string {
	if phone == "" {
		return ""
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if len(digits) < 4 {
		return "****"
	}

	return "***-****-" + digits[len(digits)-4:]
}

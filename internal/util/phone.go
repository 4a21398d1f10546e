package util

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeBRPhone normalizes a Brazilian phone to digits only: DDD plus an
// 8-digit landline or 9-digit mobile number. An optional +55 country prefix
// is stripped.
func NormalizeBRPhone(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("phone is required")
	}

	var digits []rune
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
			continue
		}
		switch r {
		case '+', ' ', '-', '(', ')':
			continue
		default:
			return "", fmt.Errorf("phone contains invalid characters")
		}
	}

	d := string(digits)
	if strings.HasPrefix(d, "55") && len(d) >= 12 {
		d = d[2:]
	}
	if len(d) != 10 && len(d) != 11 {
		return "", fmt.Errorf("phone must have 10 or 11 digits (DDD + number)")
	}
	if d[0] == '0' {
		return "", fmt.Errorf("phone DDD cannot start with 0")
	}
	// mobiles carry a leading 9 after the DDD
	if len(d) == 11 && d[2] != '9' {
		return "", fmt.Errorf("mobile phone must have 9 after the DDD")
	}
	return d, nil
}

// MaskBRPhone renders a normalized phone as (00) 00000-0000 or (00) 0000-0000.
// Inputs of unexpected length are returned unchanged.
func MaskBRPhone(phone string) string {
	switch len(phone) {
	case 11:
		return "(" + phone[:2] + ") " + phone[2:7] + "-" + phone[7:]
	case 10:
		return "(" + phone[:2] + ") " + phone[2:6] + "-" + phone[6:]
	}
	return phone
}

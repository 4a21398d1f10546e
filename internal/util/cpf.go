package util

import (
	"fmt"
	"strings"
	"unicode"
)

// NormalizeCPF strips the usual mask characters and validates the checksum.
// Returns the 11-digit form on success.
func NormalizeCPF(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("cpf is required")
	}

	var digits []rune
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
			continue
		}
		switch r {
		case '.', '-', ' ':
			continue
		default:
			return "", fmt.Errorf("cpf contains invalid characters")
		}
	}
	if len(digits) != 11 {
		return "", fmt.Errorf("cpf must have 11 digits")
	}

	cpf := string(digits)
	if !validCPFChecksum(cpf) {
		return "", fmt.Errorf("cpf checksum is invalid")
	}
	return cpf, nil
}

// validCPFChecksum checks the two verification digits. Sequences of a single
// repeated digit (000..., 111...) pass the arithmetic but are not valid CPFs.
func validCPFChecksum(cpf string) bool {
	same := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			same = false
			break
		}
	}
	if same {
		return false
	}

	d1 := cpfVerifierDigit(cpf[:9], 10)
	if int(cpf[9]-'0') != d1 {
		return false
	}
	d2 := cpfVerifierDigit(cpf[:10], 11)
	return int(cpf[10]-'0') == d2
}

// cpfVerifierDigit computes one verification digit: weighted sum with weights
// startWeight..2, mod 11; remainder below 2 maps to 0.
func cpfVerifierDigit(digits string, startWeight int) int {
	sum := 0
	for i, r := range digits {
		sum += int(r-'0') * (startWeight - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return rest
}

// MaskCPF renders a normalized CPF as 000.000.000-00. Inputs that are not
// 11 digits are returned unchanged.
func MaskCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
}

package utils

import (
	"regexp"
)

var nonDigitRegex = regexp.MustCompile(`\D`)

// OnlyDigits strips every non-digit character from s
func OnlyDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// ValidateCPF validates a CPF number.
// It strips formatting, rejects anything other than 11 digits or 11 repeated
// digits, then checks both mod-11 verification digits.
func ValidateCPF(cpf string) bool {
	cpf = OnlyDigits(cpf)

	if len(cpf) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	digits := make([]int, 11)
	for i := range cpf {
		digits[i] = int(cpf[i] - '0')
	}

	return cpfCheckDigit(digits[:9]) == digits[9] && cpfCheckDigit(digits[:10]) == digits[10]
}

// cpfCheckDigit computes the next verification digit for the given prefix.
// Weights run from len(prefix)+1 down to 2.
func cpfCheckDigit(prefix []int) int {
	sum := 0
	weight := len(prefix) + 1
	for _, d := range prefix {
		sum += d * weight
		weight--
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		return 0
	}
	return remainder
}

// FormatCPF renders 11 digits as NNN.NNN.NNN-NN; other inputs are returned unchanged.
func FormatCPF(cpf string) string {
	d := OnlyDigits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return d[:3] + "." + d[3:6] + "." + d[6:9] + "-" + d[9:]
}

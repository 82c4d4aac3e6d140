package observability

import (
	"strings"

	"github.com/recicla365/app-ecopontos/internal/logging"
)

const maskedCPF = "***.***.***-**"

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF keeps the first and third digit groups of a CPF. It accepts the
// formatted or the digits-only form; anything else is fully masked.
func MaskCPF(cpf string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, cpf)
	if len(digits) != 11 {
		return maskedCPF
	}
	return digits[:3] + ".***." + digits[6:9] + "-**"
}

// MaskEmail keeps the first character of the local part and the domain
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

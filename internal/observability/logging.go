package observability

import (
	"github.com/prefeitura-rio/app-cpf/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCPF masks a CPF for logging, keeping the first three digits and the
// seventh to ninth digits. Input that is not 11 plain digits is fully masked.
func MaskCPF(cpf string) string {
	if len(cpf) != 11 {
		return "***********"
	}
	for i := 0; i < len(cpf); i++ {
		if cpf[i] < '0' || cpf[i] > '9' {
			return "***********"
		}
	}
	return cpf[:3] + "***" + cpf[6:9] + "**"
}

// MaskInput masks arbitrary user input that was supposed to be a CPF.
// Only its length survives, which is enough to debug length errors.
func MaskInput(input string) string {
	if len(input) > 32 {
		input = input[:32]
	}
	masked := make([]byte, len(input))
	for i := range masked {
		masked[i] = '*'
	}
	return string(masked)
}

package validators

import (
	"strings"
	"unicode"
)

// NormalizePhone descarta máscara ((, ), -, espaço, ponto) e mantém
// dígitos e um eventual + inicial.
func NormalizePhone(phone string) string {
	var b strings.Builder
	for i, r := range phone {
		if unicode.IsDigit(r) || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsPhoneValid aceita telefones BR com ou sem DDI: 8 a 13 dígitos.
func IsPhoneValid(phone string) bool {
	normalized := strings.TrimPrefix(NormalizePhone(phone), "+")
	if len(normalized) < 8 || len(normalized) > 13 {
		return false
	}
	for _, r := range normalized {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

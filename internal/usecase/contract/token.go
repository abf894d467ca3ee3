package contract

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"unicode"
)

// newToken gera 10 caracteres hexadecimais minúsculos.
func newToken() (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// slugify reduz o nome do cliente a um caminho de URL: minúsculas,
// separadores viram hífen, resto é descartado.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true

	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

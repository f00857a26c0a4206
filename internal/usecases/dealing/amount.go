package dealing

import (
	"regexp"
	"strconv"
	"strings"

	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
)

var valueFieldKeywords = []string{"valor", "price", "receita", "mensalidade", "premio"}

var (
	nonNumericChars = regexp.MustCompile(`[^0-9.,-]`)
	leadingNumber   = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)`)
)

// SelectValueField escolhe o campo com o valor do negócio: o campo configurado
// (nome exato, depois contido, mesmo vazio) e, só quando ele não existe no card,
// o primeiro preenchido que casar com as palavras-chave.
func SelectValueField(fields []pipefydomain.CustomField, configured string) *pipefydomain.CustomField {
	if target := Normalize(strings.TrimSpace(configured)); target != "" {
		if field := findFieldByName(fields, func(name string) bool { return name == target }); field != nil {
			return field
		}
		if field := findFieldByName(fields, func(name string) bool { return strings.Contains(name, target) }); field != nil {
			return field
		}
	}

	return findFieldByKeywords(fields, valueFieldKeywords)
}

// ParseAmount converte valores monetários em texto livre ("R$ 1.200,50") para float.
// Com "." e "," presentes o ponto é separador de milhar; só com "," a vírgula é decimal.
// Valores ilegíveis resultam em 0.
func ParseAmount(raw string) float64 {
	cleaned := nonNumericChars.ReplaceAllString(raw, "")

	switch {
	case strings.Contains(cleaned, ".") && strings.Contains(cleaned, ","):
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	case strings.Contains(cleaned, ","):
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	number := leadingNumber.FindString(cleaned)
	if number == "" {
		return 0
	}

	amount, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0
	}

	return amount
}

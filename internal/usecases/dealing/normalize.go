package dealing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics cobre o bloco U+0300–U+036F
var combiningDiacritics = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036F
})

// Normalize decompõe o texto (NFD), remove os acentos e converte para minúsculas.
// "Negócio Perdido" e "negocio perdido" resultam em "negocio perdido".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	t := transform.Chain(norm.NFD, runes.Map(unicode.ToLower), runes.Remove(combiningDiacritics))

	normalized, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}

	return normalized
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// splitList separa uma configuração "a, b,c" em itens sem espaços nas pontas
func splitList(raw string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func normalizeAll(items []string) []string {
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		normalized = append(normalized, Normalize(item))
	}
	return normalized
}

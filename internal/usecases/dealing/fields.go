package dealing

import (
	"slices"
	"strings"
	"unicode"

	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
	"github.com/rodrigohacking/plinhub/internal/domain"
)

const defaultChannel = "Pipefy"

var (
	lossReasonKeywords = []string{"motivo da perda", "motivo de perda", "motivo recusa", "motivo do descarte", "loss reason", "motivo"}
	sellerKeywords     = []string{"vendedor", "responsavel"}
	insuranceKeyword   = "qual o tipo de seguro"
)

// findField devolve o primeiro campo preenchido cujo nome normalizado satisfaz match
func findField(fields []pipefydomain.CustomField, match func(normalizedName string) bool) *pipefydomain.CustomField {
	for i := range fields {
		if strings.TrimSpace(fields[i].Value) == "" {
			continue
		}
		if match(Normalize(fields[i].Name)) {
			return &fields[i]
		}
	}
	return nil
}

// findFieldByName ignora o valor: um campo configurado vazio continua sendo o campo escolhido
func findFieldByName(fields []pipefydomain.CustomField, match func(normalizedName string) bool) *pipefydomain.CustomField {
	for i := range fields {
		if match(Normalize(fields[i].Name)) {
			return &fields[i]
		}
	}
	return nil
}

// findFieldByKeywords respeita a ordem das palavras-chave, não a ordem dos campos
func findFieldByKeywords(fields []pipefydomain.CustomField, keywords []string) *pipefydomain.CustomField {
	for _, keyword := range keywords {
		field := findField(fields, func(name string) bool { return strings.Contains(name, keyword) })
		if field != nil {
			return field
		}
	}
	return nil
}

// cleanValue remove colchetes e aspas dos valores de seleção ("[\"Auto\"]" vira "Auto")
func cleanValue(value string) string {
	return strings.TrimSpace(strings.NewReplacer("[", "", "]", "", `"`, "").Replace(value))
}

// ResolveLossReason busca o motivo da perda no campo configurado, depois pelos nomes usuais,
// e devolve "Outros" quando nada for encontrado.
func ResolveLossReason(fields []pipefydomain.CustomField, configured string) string {
	if target := Normalize(strings.TrimSpace(configured)); target != "" {
		field := findField(fields, func(name string) bool { return strings.Contains(name, target) })
		if field != nil {
			if reason := cleanValue(field.Value); reason != "" {
				return reason
			}
		}
	}

	if field := findFieldByKeywords(fields, lossReasonKeywords); field != nil {
		if reason := cleanValue(field.Value); reason != "" {
			return reason
		}
	}

	return domain.DefaultLossReason
}

// words casam como palavra inteira mesmo sem "utm" ("Campanha", "Source");
// aliases são ambíguos ("Meio de pagamento") e exigem "utm" no nome
type utmBucket struct {
	canonical string
	words     []string
	aliases   []string
}

var utmBuckets = []utmBucket{
	{canonical: "utm_campaign", words: []string{"campaign", "campanha"}, aliases: []string{"campaign", "campanha"}},
	{canonical: "utm_content", words: []string{"content"}, aliases: []string{"content", "conteudo"}},
	{canonical: "utm_term", words: []string{"term"}, aliases: []string{"term", "termo"}},
	{canonical: "utm_source", words: []string{"source"}, aliases: []string{"source", "origem", "fonte"}},
	{canonical: "utm_medium", words: []string{"medium"}, aliases: []string{"medium", "midia", "meio"}},
}

func (b utmBucket) looseMatch(name string, words []string) bool {
	if strings.Contains(name, "utm") && containsAny(name, b.aliases) {
		return true
	}
	for _, word := range words {
		if slices.Contains(b.words, word) {
			return true
		}
	}
	return false
}

// UTM guarda os parâmetros de campanha encontrados nos campos do card
type UTM struct {
	Campaign *string
	Content  *string
	Term     *string
	Source   *string
	Medium   *string
}

func (u *UTM) slot(canonical string) **string {
	switch canonical {
	case "utm_campaign":
		return &u.Campaign
	case "utm_content":
		return &u.Content
	case "utm_term":
		return &u.Term
	case "utm_source":
		return &u.Source
	default:
		return &u.Medium
	}
}

// ResolveUTM preenche cada parâmetro de forma independente. O nome canônico (utm_source)
// sempre vence; um nome aproximado ("UTM Origem", "Campanha") só é usado se nada foi capturado antes.
func ResolveUTM(fields []pipefydomain.CustomField) UTM {
	utm := UTM{}
	exact := make(map[string]bool, len(utmBuckets))

	for _, field := range fields {
		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		name := Normalize(field.Name)
		canonicalName := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.TrimSpace(name))
		words := strings.FieldsFunc(name, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })

		for _, bucket := range utmBuckets {
			slot := utm.slot(bucket.canonical)

			if canonicalName == bucket.canonical {
				if !exact[bucket.canonical] {
					*slot = &value
					exact[bucket.canonical] = true
				}
				continue
			}

			if *slot == nil && bucket.looseMatch(name, words) {
				*slot = &value
			}
		}
	}

	return utm
}

// ResolveInsuranceType lê o tipo de seguro do formulário. O campo interno com códigos
// de produto tem outro nome e fica de fora de propósito.
func ResolveInsuranceType(fields []pipefydomain.CustomField) *string {
	field := findField(fields, func(name string) bool {
		return strings.Contains(name, insuranceKeyword) || strings.TrimSpace(name) == "produto"
	})
	if field == nil {
		return nil
	}

	insuranceType := cleanValue(field.Value)
	if insuranceType == "" {
		return nil
	}

	return &insuranceType
}

func labelNames(labels []pipefydomain.Label) []string {
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		if label.Name != "" {
			names = append(names, label.Name)
		}
	}
	return names
}

// resolveChannel usa a primeira etiqueta, depois a utm_source e por fim "Pipefy"
func resolveChannel(labels []string, utmSource *string) string {
	if len(labels) > 0 {
		return labels[0]
	}
	if utmSource != nil {
		return *utmSource
	}
	return defaultChannel
}

func resolveSeller(card *pipefydomain.Card) string {
	for _, assignee := range card.Assignees {
		if name := strings.TrimSpace(assignee.Name); name != "" {
			return name
		}
	}

	if field := findFieldByKeywords(card.Fields, sellerKeywords); field != nil {
		return cleanValue(field.Value)
	}

	return ""
}

func resolveClient(card *pipefydomain.Card) string {
	field := findField(card.Fields, func(name string) bool {
		name = strings.TrimSpace(name)
		return strings.Contains(name, "cliente") || name == "nome" || name == "razao social"
	})
	if field != nil {
		return cleanValue(field.Value)
	}

	return card.Title
}

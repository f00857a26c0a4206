package dealing

import (
	"slices"
	"strings"

	"github.com/rodrigohacking/plinhub/internal/domain"
)

// WildcardPipe é a chave do OverrideTable aplicada a todos os pipes
const WildcardPipe = "*"

var (
	lostKeywords      = []string{"perdido", "negocio perdido", "lost", "cancelado"}
	wonKeywords       = []string{"ganho", "vendido", "fechado", "contrato assinado", "apolice emitida", "implantacao", "enviado ao cliente", "assinado"}
	qualifiedKeywords = []string{"qualificado", "potencial", "negociacao"}
)

// OverrideTable fixa o status de fases por pipe ID e tem prioridade sobre qualquer outra regra
type OverrideTable map[string]domain.PhaseOverride

// forPipe junta as fases do curinga com as do pipe informado
func (t OverrideTable) forPipe(pipeID string) domain.PhaseOverride {
	merged := domain.PhaseOverride{}

	for _, key := range []string{WildcardPipe, pipeID} {
		override, ok := t[key]
		if !ok || key == "" {
			continue
		}
		merged.LostPhaseIDs = append(merged.LostPhaseIDs, override.LostPhaseIDs...)
		merged.WonPhaseIDs = append(merged.WonPhaseIDs, override.WonPhaseIDs...)
		merged.QualifiedPhaseIDs = append(merged.QualifiedPhaseIDs, override.QualifiedPhaseIDs...)
	}

	return merged
}

// PhaseMatcher recebe o ID da fase e o nome já normalizado
type PhaseMatcher func(phaseID, normalizedName string) bool

// Rule associa um predicado ao status resultante. As regras são avaliadas em ordem
// e a primeira que casar define o status.
type Rule struct {
	Name   string
	Status domain.DealStatus
	Match  PhaseMatcher
}

type Classifier struct {
	rules []Rule
}

// NewClassifier monta a lista ordenada de regras: overrides, perdido, ganho e qualificado
func NewClassifier(pipeID string, cfg domain.PhaseConfig, overrides OverrideTable) *Classifier {
	override := overrides.forPipe(pipeID)

	rules := []Rule{
		{Name: "override_lost", Status: domain.DealStatusLost, Match: idIn(override.LostPhaseIDs)},
		{Name: "override_won", Status: domain.DealStatusWon, Match: idIn(override.WonPhaseIDs)},
		{Name: "override_qualified", Status: domain.DealStatusQualified, Match: idIn(override.QualifiedPhaseIDs)},
		{
			Name:   "lost",
			Status: domain.DealStatusLost,
			Match:  phaseRule(cfg.LostPhaseID, cfg.LostPhase, lostKeywords),
		},
		{
			Name:   "won",
			Status: domain.DealStatusWon,
			Match:  phaseRule(cfg.WonPhaseID, cfg.WonPhase, wonKeywords),
		},
		{
			Name:   "qualified",
			Status: domain.DealStatusQualified,
			Match:  phaseRule(cfg.QualifiedPhaseID, cfg.QualifiedPhase, qualifiedKeywords),
		},
	}

	return &Classifier{rules: rules}
}

// Classify devolve o status da fase; sem regra correspondente o negócio é "new"
func (c *Classifier) Classify(phaseID, phaseName string) domain.DealStatus {
	status, _ := c.explain(phaseID, phaseName)
	return status
}

func (c *Classifier) explain(phaseID, phaseName string) (domain.DealStatus, string) {
	normalized := Normalize(phaseName)

	for _, rule := range c.rules {
		if rule.Match(phaseID, normalized) {
			return rule.Status, rule.Name
		}
	}

	return domain.DealStatusNew, "default"
}

func idIn(ids []string) PhaseMatcher {
	trimmed := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			trimmed = append(trimmed, id)
		}
	}

	return func(phaseID, _ string) bool {
		return phaseID != "" && slices.Contains(trimmed, phaseID)
	}
}

func nameIn(names []string) PhaseMatcher {
	normalized := normalizeAll(names)

	return func(_, normalizedName string) bool {
		return normalizedName != "" && slices.Contains(normalized, normalizedName)
	}
}

func nameContains(keywords []string) PhaseMatcher {
	return func(_, normalizedName string) bool {
		return containsAny(normalizedName, keywords)
	}
}

// phaseRule combina IDs configurados, nomes configurados e palavras-chave, nessa ordem
func phaseRule(ids, names string, keywords []string) PhaseMatcher {
	matchers := []PhaseMatcher{
		idIn(splitList(ids)),
		nameIn(splitList(names)),
		nameContains(keywords),
	}

	return func(phaseID, normalizedName string) bool {
		for _, match := range matchers {
			if match(phaseID, normalizedName) {
				return true
			}
		}
		return false
	}
}

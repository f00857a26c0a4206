package dealing

import (
	"testing"

	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func defaultOverrides() OverrideTable {
	return OverrideTable{
		WildcardPipe: {LostPhaseIDs: []string{"338889931"}},
	}
}

func TestClassifier_Keywords(t *testing.T) {
	classifier := NewClassifier("pipe-1", domain.PhaseConfig{}, defaultOverrides())

	tests := []struct {
		phaseName string
		expected  domain.DealStatus
	}{
		{phaseName: "Negócio Perdido", expected: domain.DealStatusLost},
		{phaseName: "Cancelado", expected: domain.DealStatusLost},
		{phaseName: "Closed Lost", expected: domain.DealStatusLost},
		{phaseName: "Ganho", expected: domain.DealStatusWon},
		{phaseName: "Apólice Emitida", expected: domain.DealStatusWon},
		{phaseName: "Implantação", expected: domain.DealStatusWon},
		{phaseName: "Enviado ao Cliente", expected: domain.DealStatusWon},
		{phaseName: "Contrato Assinado", expected: domain.DealStatusWon},
		{phaseName: "Lead Qualificado", expected: domain.DealStatusQualified},
		{phaseName: "Potencial", expected: domain.DealStatusQualified},
		{phaseName: "Em Negociação", expected: domain.DealStatusQualified},
		{phaseName: "Caixa de entrada", expected: domain.DealStatusNew},
		{phaseName: "Qualificação", expected: domain.DealStatusNew},
		{phaseName: "", expected: domain.DealStatusNew},
	}

	for _, tt := range tests {
		t.Run(tt.phaseName, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify("100", tt.phaseName))
		})
	}
}

func TestClassifier_LostPrecedesWonPrecedesQualified(t *testing.T) {
	classifier := NewClassifier("pipe-1", domain.PhaseConfig{}, nil)

	// "fechado" é ganho, mas "perdido" é avaliado antes
	assert.Equal(t, domain.DealStatusLost, classifier.Classify("1", "Fechado - Perdido"))
	// "negociacao" é qualificado, mas "ganho" é avaliado antes
	assert.Equal(t, domain.DealStatusWon, classifier.Classify("1", "Negociação Ganho"))
}

func TestClassifier_ConfiguredIDsAndNames(t *testing.T) {
	cfg := domain.PhaseConfig{
		WonPhaseID:       "10, 11",
		LostPhase:        "Desistiu, Sem Retorno",
		QualifiedPhaseID: "30",
		QualifiedPhase:   "Qualificação",
	}
	classifier := NewClassifier("pipe-1", cfg, nil)

	assert.Equal(t, domain.DealStatusWon, classifier.Classify("11", "Etapa 11"))
	assert.Equal(t, domain.DealStatusLost, classifier.Classify("20", "sem retorno"))
	assert.Equal(t, domain.DealStatusQualified, classifier.Classify("30", "Etapa 30"))
	assert.Equal(t, domain.DealStatusQualified, classifier.Classify("31", "QUALIFICACAO"))
	// nome configurado precisa ser igual, não apenas contido
	assert.Equal(t, domain.DealStatusNew, classifier.Classify("32", "Pré-qualificação"))
}

func TestClassifier_ConfiguredLostIDBeatsWonName(t *testing.T) {
	cfg := domain.PhaseConfig{LostPhaseID: "77"}
	classifier := NewClassifier("pipe-1", cfg, nil)

	assert.Equal(t, domain.DealStatusLost, classifier.Classify("77", "Ganho"))
}

func TestClassifier_UniversalLostPhase(t *testing.T) {
	configs := []domain.PhaseConfig{
		{},
		{WonPhaseID: "338889931"},
		{WonPhase: "Ganho", QualifiedPhaseID: "338889931"},
	}

	for _, cfg := range configs {
		for _, pipeID := range []string{"pipe-1", "pipe-2", ""} {
			classifier := NewClassifier(pipeID, cfg, defaultOverrides())

			assert.Equal(t, domain.DealStatusLost, classifier.Classify("338889931", "Ganho"))
			assert.Equal(t, domain.DealStatusLost, classifier.Classify("338889931", "Qualquer"))
		}
	}
}

func TestClassifier_PipeScopedOverrides(t *testing.T) {
	overrides := OverrideTable{
		WildcardPipe: {LostPhaseIDs: []string{"338889931"}},
		"pipe-7":     {WonPhaseIDs: []string{"500"}, QualifiedPhaseIDs: []string{"600"}},
	}

	scoped := NewClassifier("pipe-7", domain.PhaseConfig{LostPhaseID: "500"}, overrides)
	assert.Equal(t, domain.DealStatusWon, scoped.Classify("500", "Perdido"))
	assert.Equal(t, domain.DealStatusQualified, scoped.Classify("600", "Ganho"))

	other := NewClassifier("pipe-8", domain.PhaseConfig{}, overrides)
	assert.Equal(t, domain.DealStatusNew, other.Classify("500", "Etapa"))
}

func TestClassifier_IsTotal(t *testing.T) {
	classifier := NewClassifier("pipe-1", domain.PhaseConfig{WonPhase: "Fim"}, defaultOverrides())
	valid := []domain.DealStatus{domain.DealStatusNew, domain.DealStatusQualified, domain.DealStatusWon, domain.DealStatusLost}

	names := []string{"", "Fim", "xyz", "Perdido", "ganho", "🚀", "Qualificado", "338889931"}
	ids := []string{"", "1", "338889931"}

	for _, id := range ids {
		for _, name := range names {
			assert.Contains(t, valid, classifier.Classify(id, name))
		}
	}
}

func TestClassifier_ExplainReportsRule(t *testing.T) {
	classifier := NewClassifier("pipe-1", domain.PhaseConfig{}, defaultOverrides())

	_, rule := classifier.explain("338889931", "Ganho")
	assert.Equal(t, "override_lost", rule)

	_, rule = classifier.explain("1", "Entrada")
	assert.Equal(t, "default", rule)
}

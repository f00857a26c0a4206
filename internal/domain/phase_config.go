package domain

// PhaseConfig é a configuração de fases de uma empresa, como salva pelo dashboard.
// Os campos de ID e de nome aceitam listas separadas por vírgula.
type PhaseConfig struct {
	WonPhase         string `json:"wonPhase"`
	WonPhaseID       string `json:"wonPhaseId"`
	LostPhase        string `json:"lostPhase"`
	LostPhaseID      string `json:"lostPhaseId"`
	QualifiedPhase   string `json:"qualifiedPhase"`
	QualifiedPhaseID string `json:"qualifiedPhaseId"`
	ValueField       string `json:"valueField"`
	LossReasonField  string `json:"lossReasonField"`
}

// PhaseOverride fixa o status de fases específicas de um pipe,
// com prioridade sobre a configuração da empresa e sobre os nomes das fases.
type PhaseOverride struct {
	WonPhaseIDs       []string `json:"wonPhaseIds"`
	LostPhaseIDs      []string `json:"lostPhaseIds"`
	QualifiedPhaseIDs []string `json:"qualifiedPhaseIds"`
}

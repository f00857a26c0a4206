package domain

import "time"

// Company é a visão somente leitura de uma empresa com integração Pipefy
type Company struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	PipeID      string      `json:"pipe_id"`
	PipefyToken string      `json:"-"`
	PhaseConfig PhaseConfig `json:"phase_config"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (c *Company) HasPipefy() bool {
	return c.PipeID != "" && c.PipefyToken != ""
}

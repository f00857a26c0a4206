package pipefyclient

import (
	"context"

	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
)

const pipePhasesQuery = `query PipePhases($pipeId: ID!) {
  pipe(id: $pipeId) {
    phases { id name cards_count }
  }
}`

const pipeDetailsQuery = `query PipeDetails($pipeId: ID!) {
  pipe(id: $pipeId) {
    phases { id name cards_count }
    start_form_fields { id label type options }
    labels { id name color }
  }
}`

type pipePhasesData struct {
	Pipe *struct {
		Phases []pipefydomain.Phase `json:"phases"`
	} `json:"pipe"`
}

type pipeDetailsData struct {
	Pipe *struct {
		Phases          []pipefydomain.Phase          `json:"phases"`
		StartFormFields []pipefydomain.StartFormField `json:"start_form_fields"`
		Labels          []pipefydomain.Label          `json:"labels"`
	} `json:"pipe"`
}

// GetPipePhases lista as fases de um pipe
func (c *PipefyClient) GetPipePhases(ctx context.Context, pipeID, token string) ([]pipefydomain.Phase, error) {
	data, err := execute[pipePhasesData](ctx, c, token, pipePhasesQuery, map[string]any{"pipeId": pipeID})
	if err != nil {
		return nil, err
	}

	if data.Pipe == nil {
		return nil, &NotFoundError{Resource: "pipe", ID: pipeID}
	}

	return data.Pipe.Phases, nil
}

// GetPipeDetails busca fases, campos do formulário inicial e etiquetas para as telas de configuração
func (c *PipefyClient) GetPipeDetails(ctx context.Context, pipeID, token string) (*pipefydomain.PipeDetails, error) {
	data, err := execute[pipeDetailsData](ctx, c, token, pipeDetailsQuery, map[string]any{"pipeId": pipeID})
	if err != nil {
		return nil, err
	}

	if data.Pipe == nil {
		return nil, &NotFoundError{Resource: "pipe", ID: pipeID}
	}

	return &pipefydomain.PipeDetails{
		Phases: data.Pipe.Phases,
		Fields: data.Pipe.StartFormFields,
		Labels: data.Pipe.Labels,
	}, nil
}

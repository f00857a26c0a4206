package pipefyclient

import (
	"context"

	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
)

const phaseCardsQuery = `query PhaseCards($phaseId: ID!, $first: Int!, $after: String) {
  phase(id: $phaseId) {
    cards(first: $first, after: $after) {
      pageInfo { hasNextPage endCursor }
      edges {
        node {
          id
          title
          createdAt
          updated_at
          finished_at
          due_date
          current_phase { id name }
          labels { name }
          fields { name value }
          assignees { name }
        }
      }
    }
  }
}`

type phaseCardsData struct {
	Phase *struct {
		Cards pipefydomain.CardsConnection `json:"cards"`
	} `json:"phase"`
}

// GetPhaseCards busca uma página de cards de uma fase a partir do cursor informado
func (c *PipefyClient) GetPhaseCards(ctx context.Context, phaseID, token, after string) (*pipefydomain.CardsPage, error) {
	variables := map[string]any{
		"phaseId": phaseID,
		"first":   c.cfg.Pipefy.PageSize,
		"after":   nil,
	}
	if after != "" {
		variables["after"] = after
	}

	data, err := execute[phaseCardsData](ctx, c, token, phaseCardsQuery, variables)
	if err != nil {
		return nil, err
	}

	if data.Phase == nil {
		return nil, &NotFoundError{Resource: "phase", ID: phaseID}
	}

	cards := make([]pipefydomain.Card, 0, len(data.Phase.Cards.Edges))
	for _, edge := range data.Phase.Cards.Edges {
		cards = append(cards, edge.Node)
	}

	return &pipefydomain.CardsPage{
		Cards:       cards,
		HasNextPage: data.Phase.Cards.PageInfo.HasNextPage,
		EndCursor:   data.Phase.Cards.PageInfo.EndCursor,
	}, nil
}

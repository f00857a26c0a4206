package pipefydomain

type PhaseRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Label struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type Assignee struct {
	Name string `json:"name"`
}

// CustomField é um campo livre do card; o valor chega sempre como texto
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Card é o snapshot de um card retornado pela API GraphQL
type Card struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	CurrentPhase   PhaseRef      `json:"current_phase"`
	CreatedAt      string        `json:"createdAt"`
	CreatedAtSnake string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
	FinishedAt     string        `json:"finished_at"`
	DueDate        string        `json:"due_date"`
	Labels         []Label       `json:"labels"`
	Fields         []CustomField `json:"fields"`
	Assignees      []Assignee    `json:"assignees"`

	// SourcePhase é o nome da fase cuja consulta retornou o card
	SourcePhase string `json:"-"`
}

// CreationDate retorna createdAt, ou created_at quando o primeiro não veio
func (c *Card) CreationDate() string {
	if c.CreatedAt != "" {
		return c.CreatedAt
	}
	return c.CreatedAtSnake
}

type CardEdge struct {
	Node Card `json:"node"`
}

type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type CardsConnection struct {
	PageInfo PageInfo   `json:"pageInfo"`
	Edges    []CardEdge `json:"edges"`
}

// CardsPage é uma página de cards de uma fase
type CardsPage struct {
	Cards       []Card
	HasNextPage bool
	EndCursor   string
}

// CardCollection é o resultado deduplicado da busca de todas as fases de um pipe
type CardCollection struct {
	Cards           []Card
	PhasesFound     int
	TotalRaw        int
	TruncatedPhases []string
	FailedPhases    []string
}

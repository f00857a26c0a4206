package pipefydomain

type Phase struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CardsCount int    `json:"cards_count"`
}

type StartFormField struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Type    string   `json:"type"`
	Options []string `json:"options"`
}

type PipeDetails struct {
	Phases []Phase          `json:"phases"`
	Fields []StartFormField `json:"fields"`
	Labels []Label          `json:"labels"`
}

package pipefydomain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GraphQLErrorItem é um item do array "errors" da resposta GraphQL
type GraphQLErrorItem struct {
	Message string `json:"message"`
}

// Response representa o envelope da API: {data}, {data, errors} ou {error}
type Response[T any] struct {
	Data   *T                  `json:"data"`
	Errors []GraphQLErrorItem  `json:"errors"`
	Error  jsoniter.RawMessage `json:"error"`
}

// FirstError retorna a mensagem de erro mais específica presente no envelope
func (r *Response[T]) FirstError() string {
	for _, item := range r.Errors {
		if item.Message != "" {
			return item.Message
		}
	}

	if len(r.Error) == 0 {
		return ""
	}

	var message string
	if err := json.Unmarshal(r.Error, &message); err == nil {
		return message
	}

	var detailed struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(r.Error, &detailed); err == nil {
		return detailed.Message
	}

	return ""
}

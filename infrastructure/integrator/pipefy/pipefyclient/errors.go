package pipefyclient

import (
	"errors"
	"fmt"
)

// ErrRateLimited indica uma única resposta HTTP 429
var ErrRateLimited = errors.New("pipefy rate limit reached")

// ConnectionError é uma falha de rede ou uma resposta HTTP diferente de 200
type ConnectionError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *ConnectionError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("pipefy connection error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("pipefy connection error: %s", e.Message)
}

func (e *ConnectionError) Unwrap() error {
	if e.StatusCode == 429 {
		return ErrRateLimited
	}
	return e.Err
}

// GraphQLError é um erro de nível de API (array "errors" na resposta)
type GraphQLError struct {
	Message string
}

func (e *GraphQLError) Error() string {
	return fmt.Sprintf("pipefy graphql error: %s", e.Message)
}

// NotFoundError indica que o pipe ou a fase não existe (ou o token não tem acesso)
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found on pipefy", e.Resource, e.ID)
}

// RateLimitExceededError é devolvido quando as novas tentativas após HTTP 429 se esgotam
type RateLimitExceededError struct {
	PhaseID string
	Retries int
}

func (e *RateLimitExceededError) Error() string {
	return fmt.Sprintf("pipefy rate limit exceeded for phase %s after %d retries", e.PhaseID, e.Retries)
}

func (e *RateLimitExceededError) Unwrap() error {
	return ErrRateLimited
}

// IsRateLimited indica se err é (ou envolve) uma resposta HTTP 429
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

package pipefyclient

import (
	"bytes"
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
	"github.com/rodrigohacking/plinhub/internal/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetPipePhases(ctx context.Context, pipeID, token string) ([]pipefydomain.Phase, error)
	GetPhaseCards(ctx context.Context, phaseID, token, after string) (*pipefydomain.CardsPage, error)
	GetPipeDetails(ctx context.Context, pipeID, token string) (*pipefydomain.PipeDetails, error)
}

type PipefyClient struct {
	httpClient *http.Client
	cfg        *config.Config
	limiter    *rate.Limiter
}

// NewClient cria o cliente GraphQL do Pipefy. O limitador local é compartilhado por todas as fases.
func NewClient(cfg *config.Config) Client {
	limit := rate.Inf
	burst := 1
	if cfg.Pipefy.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.Pipefy.RequestsPerSecond)
		burst = cfg.Pipefy.PhaseBatchSize
		if burst < 1 {
			burst = 1
		}
	}

	return &PipefyClient{
		httpClient: &http.Client{
			Timeout: cfg.Pipefy.HTTPTimeout,
		},
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, burst),
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// execute envia a consulta e devolve o campo "data" já decodificado
func execute[T any](ctx context.Context, c *PipefyClient, token, query string, variables map[string]any) (*T, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "pipefy: rate limiter wait")
	}

	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, errors.Wrap(err, "pipefy: erro ao serializar a consulta")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Pipefy.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "pipefy: erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("pipefy: erro ao executar a requisição")
		return nil, &ConnectionError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnectionError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	var envelope pipefydomain.Response[T]
	decodeErr := json.Unmarshal(body, &envelope)

	if resp.StatusCode != http.StatusOK {
		message := ""
		if decodeErr == nil {
			message = envelope.FirstError()
		}
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}

		return nil, &ConnectionError{StatusCode: resp.StatusCode, Message: message}
	}

	if decodeErr != nil {
		return nil, errors.Wrap(decodeErr, "pipefy: erro ao decodificar a resposta")
	}

	if message := envelope.FirstError(); message != "" || len(envelope.Errors) > 0 {
		return nil, &GraphQLError{Message: message}
	}

	if envelope.Data == nil {
		return nil, &GraphQLError{Message: "empty response"}
	}

	return envelope.Data, nil
}

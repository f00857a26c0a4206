package pipefy

import (
	"context"
	"errors"
	"time"

	pipefydomain "github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/domain"
	"github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/pipefyclient"
	"github.com/rodrigohacking/plinhub/internal/config"
	"github.com/rodrigohacking/plinhub/pkg/retry"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPipeIDRequired = errors.New("pipefy pipe ID is required")
	ErrTokenRequired  = errors.New("pipefy token is required")
)

const (
	defaultPhaseBatchSize   = 2
	defaultMaxPagesPerPhase = 100
	defaultMaxRetries       = 3
	defaultBackoffBase      = time.Second
	defaultBackoffMax       = 5 * time.Second
)

type PipefyIntegrator interface {
	FetchCards(ctx context.Context, pipeID, token string) (*pipefydomain.CardCollection, error)
	GetPipeDetails(ctx context.Context, pipeID, token string) (*pipefydomain.PipeDetails, error)
}

type PipefyService struct {
	cfg     *config.Config
	Client  pipefyclient.Client
	backoff retry.Policy
}

func New(cfg *config.Config, client pipefyclient.Client) PipefyIntegrator {
	maxRetries := cfg.Pipefy.MaxRateLimitRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	base := cfg.Pipefy.BackoffBase
	if base <= 0 {
		base = defaultBackoffBase
	}

	maxDelay := cfg.Pipefy.BackoffMax
	if maxDelay <= 0 {
		maxDelay = defaultBackoffMax
	}

	return &PipefyService{
		cfg:     cfg,
		Client:  client,
		backoff: retry.ExponentialPolicy(maxRetries, base, maxDelay),
	}
}

type phaseResult struct {
	cards     []pipefydomain.Card
	pages     int
	truncated bool
	err       error
}

// FetchCards busca os cards de todas as fases do pipe, em lotes de fases concorrentes.
// Falhas de uma fase não interrompem as demais; apenas a listagem de fases é fatal.
func (s *PipefyService) FetchCards(ctx context.Context, pipeID, token string) (*pipefydomain.CardCollection, error) {
	if pipeID == "" {
		return nil, ErrPipeIDRequired
	}
	if token == "" {
		return nil, ErrTokenRequired
	}

	phases, err := s.Client.GetPipePhases(ctx, pipeID, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"pipe_id": pipeID,
			"error":   err.Error(),
		}).Error("pipefy: failed to list pipe phases")
		return nil, err
	}

	batchSize := s.cfg.Pipefy.PhaseBatchSize
	if batchSize <= 0 {
		batchSize = defaultPhaseBatchSize
	}

	collection := &pipefydomain.CardCollection{PhasesFound: len(phases)}
	allCards := make([]pipefydomain.Card, 0)

	for start := 0; start < len(phases); start += batchSize {
		batch := phases[start:min(start+batchSize, len(phases))]
		results := make([]phaseResult, len(batch))

		var g errgroup.Group
		for i, phase := range batch {
			i, phase := i, phase
			g.Go(func() error {
				results[i] = s.fetchPhaseCards(ctx, token, phase)
				return nil
			})
		}
		_ = g.Wait()

		for i, result := range results {
			allCards = append(allCards, result.cards...)
			if result.truncated {
				collection.TruncatedPhases = append(collection.TruncatedPhases, batch[i].Name)
			}
			if result.err != nil {
				collection.FailedPhases = append(collection.FailedPhases, batch[i].Name)
			}
		}
	}

	collection.TotalRaw = len(allCards)
	collection.Cards = dedupeCards(allCards)

	logrus.WithFields(logrus.Fields{
		"pipe_id":      pipeID,
		"phases_found": collection.PhasesFound,
		"total_raw":    collection.TotalRaw,
		"unique_cards": len(collection.Cards),
	}).Info("pipefy: cards fetched")

	return collection, nil
}

// fetchPhaseCards pagina sequencialmente os cards de uma fase
func (s *PipefyService) fetchPhaseCards(ctx context.Context, token string, phase pipefydomain.Phase) phaseResult {
	maxPages := s.cfg.Pipefy.MaxPagesPerPhase
	if maxPages <= 0 {
		maxPages = defaultMaxPagesPerPhase
	}

	result := phaseResult{}
	cursor := ""

	for {
		if result.pages >= maxPages {
			logrus.WithFields(logrus.Fields{
				"phase_id":   phase.ID,
				"phase_name": phase.Name,
				"pages":      result.pages,
				"cards":      len(result.cards),
			}).Warn("pipefy: page cap reached, remaining cards of the phase were skipped")
			result.truncated = true
			break
		}

		page, retries, err := retry.Do(ctx, s.backoff, pipefyclient.IsRateLimited,
			func(ctx context.Context) (*pipefydomain.CardsPage, error) {
				return s.Client.GetPhaseCards(ctx, phase.ID, token, cursor)
			})
		if err != nil {
			if pipefyclient.IsRateLimited(err) {
				err = &pipefyclient.RateLimitExceededError{PhaseID: phase.ID, Retries: retries}
			}

			logrus.WithFields(logrus.Fields{
				"phase_id":   phase.ID,
				"phase_name": phase.Name,
				"page":       result.pages + 1,
				"error":      err.Error(),
			}).Warn("pipefy: stopping pagination for phase")
			result.err = err
			break
		}

		if retries > 0 {
			logrus.WithFields(logrus.Fields{
				"phase_id": phase.ID,
				"retries":  retries,
			}).Debug("pipefy: page fetched after rate limit retries")
		}

		result.pages++

		if len(page.Cards) == 0 {
			break
		}

		for _, card := range page.Cards {
			card.SourcePhase = phase.Name
			result.cards = append(result.cards, card)
		}

		if !page.HasNextPage || page.EndCursor == "" {
			break
		}
		cursor = page.EndCursor
	}

	logrus.WithFields(logrus.Fields{
		"phase_id":   phase.ID,
		"phase_name": phase.Name,
		"pages":      result.pages,
		"cards":      len(result.cards),
	}).Debug("pipefy: phase fetched")

	return result
}

// dedupeCards mantém um card por ID, na ordem em que apareceram
func dedupeCards(cards []pipefydomain.Card) []pipefydomain.Card {
	index := make(map[string]int, len(cards))
	unique := make([]pipefydomain.Card, 0, len(cards))

	for _, card := range cards {
		if pos, ok := index[card.ID]; ok {
			unique[pos] = card
			continue
		}
		index[card.ID] = len(unique)
		unique = append(unique, card)
	}

	return unique
}

// GetPipeDetails retorna fases, campos e etiquetas do pipe para as telas de configuração
func (s *PipefyService) GetPipeDetails(ctx context.Context, pipeID, token string) (*pipefydomain.PipeDetails, error) {
	if pipeID == "" {
		return nil, ErrPipeIDRequired
	}
	if token == "" {
		return nil, ErrTokenRequired
	}

	details, err := s.Client.GetPipeDetails(ctx, pipeID, token)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"pipe_id": pipeID,
			"error":   err.Error(),
		}).Error("pipefy: failed to get pipe details")
		return nil, err
	}

	return details, nil
}

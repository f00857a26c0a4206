package retry

import (
	"context"
	"math"
	"time"
)

// Policy decide, para a n-ésima nova tentativa (começando em 1), quanto esperar.
// Retornar ok=false encerra as tentativas.
type Policy func(retry int) (delay time.Duration, ok bool)

// ExponentialPolicy espera min(maxDelay, base * 2^(retry-1)) e desiste depois de maxRetries.
func ExponentialPolicy(maxRetries int, base, maxDelay time.Duration) Policy {
	return func(retry int) (time.Duration, bool) {
		if retry < 1 || retry > maxRetries {
			return 0, false
		}

		delay := float64(base) * math.Pow(2, float64(retry-1))
		if delay > float64(maxDelay) {
			delay = float64(maxDelay)
		}

		return time.Duration(delay), true
	}
}

// Do executa fn e, enquanto o erro for aceito por retryable, aplica a política.
// Quando a política desiste, o último erro é devolvido junto com o número de novas tentativas feitas.
func Do[T any](
	ctx context.Context,
	policy Policy,
	retryable func(error) bool,
	fn func(ctx context.Context) (T, error),
) (T, int, error) {
	var zero T

	for retries := 0; ; retries++ {
		val, err := fn(ctx)
		if err == nil {
			return val, retries, nil
		}

		if ctx.Err() != nil || !retryable(err) {
			return zero, retries, err
		}

		delay, ok := policy(retries + 1)
		if !ok {
			return zero, retries, err
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, retries, err
		case <-timer.C:
		}
	}
}

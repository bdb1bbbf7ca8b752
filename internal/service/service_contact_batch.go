package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/hubspot-bridge/internal/adapter"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/metrics"
	"github.com/MKhiriev/hubspot-bridge/internal/retry"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
	"github.com/MKhiriev/hubspot-bridge/models"
)

// CreateContactsBatch submits contacts in a single batch create call.
//
// The payload is serialised once and resent byte for byte on every attempt.
// Attempts are strictly sequential:
//   - 2xx: the remote body is returned verbatim.
//   - 429: wait for Retry-After (or the last known backoff) and resend, up to
//     the attempt ceiling; then *RateLimitExceededError.
//   - 5xx: wait base × attempts and resend, up to the attempt ceiling; then
//     *RemoteServerError carrying the last body.
//   - any other status or a transport failure: *RemoteRequestError at once.
//
// Invalid input (nil, empty or more than 100 contacts, missing token) yields
// a *ValidationError without any network call. When ctx ends during a wait
// or an attempt, the result wraps ErrInterrupted.
func (s *contactService) CreateContactsBatch(ctx context.Context, token string, contacts []models.Contact) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	if err := s.checkToken(token); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(ctx, models.BatchContactRequest{Contacts: contacts}); err != nil {
		log.Warn().Err(err).Int("size", len(contacts)).Msg("invalid contacts batch")
		return nil, newValidationError(err)
	}

	payload, err := json.Marshal(models.NewBatchCreateInput(contacts))
	if err != nil {
		return nil, fmt.Errorf("error encoding contacts batch: %w", err)
	}

	log.Info().
		Int("size", len(contacts)).
		Str("token", utils.MaskToken(token)).
		Msg("submitting contacts batch")

	state := s.policy.NewState()
	for {
		resp, err := s.adapter.SendContactsBatch(ctx, token, payload)
		if err != nil {
			if ctxErr := contextError(err); ctxErr != nil {
				metrics.RecordBatchAttempt(metrics.OutcomeInterrupted)
				return nil, ctxErr
			}
			metrics.RecordBatchAttempt(metrics.OutcomeFatal)
			log.Err(err).Msg("contacts batch transport failure")
			return nil, &RemoteRequestError{Err: fmt.Errorf("transport: %w", err)}
		}

		var wait time.Duration
		switch retry.Classify(resp.StatusCode) {
		case retry.Succeeded:
			metrics.RecordBatchAttempt(metrics.OutcomeSucceeded)
			log.Info().Int("status", resp.StatusCode).Int("retries", state.Attempts).Msg("contacts batch created")
			return json.RawMessage(resp.Body), nil

		case retry.RateLimited:
			metrics.RecordBatchAttempt(metrics.OutcomeRateLimited)
			var again bool
			if wait, again = state.OnRateLimited(resp.Header.Get("Retry-After")); !again {
				log.Error().Int("attempts", state.Attempts).Dur("retry_after", wait).Msg("contacts batch rate limit budget exhausted")
				return nil, &RateLimitExceededError{RetryAfter: wait, Attempts: state.Attempts}
			}

		case retry.ServerError:
			metrics.RecordBatchAttempt(metrics.OutcomeServerError)
			var again bool
			if wait, again = state.OnServerError(); !again {
				log.Error().Int("attempts", state.Attempts).Int("status", resp.StatusCode).Msg("contacts batch server error budget exhausted")
				return nil, &RemoteServerError{StatusCode: resp.StatusCode, Body: string(resp.Body), Attempts: state.Attempts}
			}

		default:
			metrics.RecordBatchAttempt(metrics.OutcomeFatal)
			log.Error().Int("status", resp.StatusCode).Bytes("body", resp.Body).Msg("contacts batch rejected")
			return nil, &RemoteRequestError{
				StatusCode: resp.StatusCode,
				Body:       string(resp.Body),
				Err:        &adapter.RemoteStatusError{StatusCode: resp.StatusCode, Body: string(resp.Body)},
			}
		}

		log.Warn().
			Int("status", resp.StatusCode).
			Int("attempt", state.Attempts).
			Dur("wait", wait).
			Msg("retrying contacts batch")
		metrics.RecordBatchRetryWait(wait.Seconds())

		if err = s.policy.Wait(ctx, wait); err != nil {
			metrics.RecordBatchAttempt(metrics.OutcomeInterrupted)
			log.Warn().Err(err).Msg("contacts batch interrupted while waiting")
			return nil, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
	}
}

// contextError returns ErrInterrupted wrapping err when err stems from a
// cancelled or expired context.
func contextError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return nil
}

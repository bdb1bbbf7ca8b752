package http

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/service"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
	"github.com/MKhiriev/hubspot-bridge/models"
)

// Error kinds reported in [models.ErrorResponse.Error].
const (
	kindInvalidRequest     = "invalid_request"
	kindRateLimitExceeded  = "rate_limit_exceeded"
	kindRemoteServerError  = "remote_server_error"
	kindAPIError           = "api_error"
	kindInterrupted        = "request_interrupted"
	kindTokenExchangeError = "token_exchange_error"
	kindInternalError      = "internal_error"
)

// errorResponse maps a service error onto the response status and body.
// Unknown errors become 500 with a generic message.
func errorResponse(err error) models.ErrorResponse {
	resp := models.ErrorResponse{
		Timestamp: time.Now().UTC(),
		Message:   err.Error(),
	}

	var (
		validationErr *service.ValidationError
		rateErr       *service.RateLimitExceededError
		serverErr     *service.RemoteServerError
		requestErr    *service.RemoteRequestError
		oauthErr      *service.OAuthError
	)

	switch {
	case errors.As(err, &validationErr):
		resp.Status, resp.Error = http.StatusBadRequest, kindInvalidRequest
	case errors.As(err, &rateErr):
		retryAfter := rateErr.RetryAfter.Milliseconds()
		resp.Status, resp.Error = http.StatusTooManyRequests, kindRateLimitExceeded
		resp.RetryAfter = &retryAfter
	case errors.As(err, &serverErr):
		resp.Status, resp.Error = http.StatusBadGateway, kindRemoteServerError
	case errors.As(err, &requestErr):
		resp.Status, resp.Error = http.StatusBadGateway, kindAPIError
		if requestErr.StatusCode >= 400 && requestErr.StatusCode < 500 {
			resp.Status = requestErr.StatusCode
		}
	case errors.Is(err, service.ErrInterrupted):
		resp.Status, resp.Error = http.StatusServiceUnavailable, kindInterrupted
	case errors.As(err, &oauthErr):
		resp.Status, resp.Error = http.StatusBadRequest, kindTokenExchangeError
	default:
		resp.Status, resp.Error = http.StatusInternalServerError, kindInternalError
		resp.Message = http.StatusText(http.StatusInternalServerError)
	}

	return resp
}

// writeError logs err and writes its [models.ErrorResponse]. Rate limit
// errors also carry a Retry-After header in whole seconds.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	resp := errorResponse(err)

	if resp.Status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.Status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", resp.Status).Msg("request rejected")
	}

	if resp.RetryAfter != nil {
		seconds := int64(math.Ceil(float64(*resp.RetryAfter) / 1000))
		w.Header().Set("Retry-After", strconv.FormatInt(seconds, 10))
	}

	if _, werr := utils.WriteJSON(w, resp, resp.Status); werr != nil {
		log.Err(werr).Msg("error writing error response")
	}
}

// writeBadRequest reports a caller error detected by the handler itself.
func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, &service.ValidationError{Err: err})
}

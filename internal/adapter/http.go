package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/hubspot-bridge/internal/config"
	"github.com/MKhiriev/hubspot-bridge/internal/logger"
	"github.com/MKhiriev/hubspot-bridge/internal/metrics"
	"github.com/MKhiriev/hubspot-bridge/internal/utils"
	"github.com/MKhiriev/hubspot-bridge/models"
	"github.com/go-resty/resty/v2"
)

const (
	contactsPath     = "/crm/v3/objects/contacts"
	batchCreatePath  = "/crm/v3/objects/contacts/batch/create"
	contentTypeJSON  = "application/json"
	operationList    = "list_contacts"
	operationGet     = "get_contact"
	operationCreate  = "create_contact"
	operationBatch   = "batch_create_contacts"
	operationToken   = "token_exchange"
	statusNoResponse = "error"
)

type httpCRMAdapter struct {
	client   *utils.HTTPClient
	tokenURL string
	limiter  *limiter

	logger *logger.Logger
}

// NewHTTPCRMAdapter constructs a resty implementation of [CRMAdapter].
// It normalises and validates hubspotCfg.APIBaseURL and hubspotCfg.TokenURL,
// configures the underlying HTTP client with the resolved base URL and
// request timeout, and builds the outbound pacing limiter from adapterCfg.
//
// Returns an error if either URL is empty or cannot be parsed.
func NewHTTPCRMAdapter(hubspotCfg config.HubSpot, adapterCfg config.Adapter, logger *logger.Logger) (CRMAdapter, error) {
	baseURL, err := normalizeBaseURL(hubspotCfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	tokenURL, err := normalizeBaseURL(hubspotCfg.TokenURL)
	if err != nil {
		return nil, fmt.Errorf("invalid token url: %w", err)
	}

	return &httpCRMAdapter{
		client:   utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokenURL: tokenURL,
		limiter:  newLimiter(adapterCfg.RequestsPerSecond, adapterCfg.Burst),
		logger:   logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request waits for a pacing slot and returns a request bound to ctx with the
// authorization header set.
func (h *httpCRMAdapter) request(ctx context.Context, token string) (*resty.Request, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req := h.client.R().SetContext(ctx)
	if auth := utils.NormalizeBearer(token); auth != "" {
		req.SetHeader("Authorization", auth)
	}
	return req, nil
}

// ListContacts implements [CRMAdapter]. It issues
// GET /crm/v3/objects/contacts?limit=<limit>&after=<offset>.
func (h *httpCRMAdapter) ListContacts(ctx context.Context, token string, offset, limit int) (json.RawMessage, error) {
	req, err := h.request(ctx, token)
	if err != nil {
		return nil, err
	}

	h.logger.Debug().
		Int("limit", limit).
		Int("after", offset).
		Str("token", utils.MaskToken(token)).
		Msg("listing contacts")

	resp, err := req.
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetQueryParam("after", strconv.Itoa(offset)).
		Get(contactsPath)
	return h.rawResult(operationList, resp, err)
}

// GetContact implements [CRMAdapter]. It issues
// GET /crm/v3/objects/contacts/{contactID}.
func (h *httpCRMAdapter) GetContact(ctx context.Context, token, contactID string) (json.RawMessage, error) {
	req, err := h.request(ctx, token)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(contactsPath + "/" + url.PathEscape(contactID))
	return h.rawResult(operationGet, resp, err)
}

// CreateContact implements [CRMAdapter]. It POSTs input to
// /crm/v3/objects/contacts.
func (h *httpCRMAdapter) CreateContact(ctx context.Context, token string, input models.ContactInput) (json.RawMessage, error) {
	req, err := h.request(ctx, token)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetHeader("Content-Type", contentTypeJSON).
		SetBody(input).
		Post(contactsPath)
	return h.rawResult(operationCreate, resp, err)
}

// SendContactsBatch implements [CRMAdapter]. payload is sent byte for byte
// to /crm/v3/objects/contacts/batch/create and the response is returned
// whatever its status.
func (h *httpCRMAdapter) SendContactsBatch(ctx context.Context, token string, payload []byte) (models.RemoteResponse, error) {
	req, err := h.request(ctx, token)
	if err != nil {
		return models.RemoteResponse{}, err
	}

	resp, err := req.
		SetHeader("Content-Type", contentTypeJSON).
		SetBody(payload).
		Post(batchCreatePath)
	if err != nil {
		metrics.RecordRemoteRequest(operationBatch, statusNoResponse)
		return models.RemoteResponse{}, fmt.Errorf("batch create request: %w", err)
	}
	metrics.RecordRemoteRequest(operationBatch, strconv.Itoa(resp.StatusCode()))

	return models.RemoteResponse{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// ExchangeToken implements [CRMAdapter]. It POSTs form as
// application/x-www-form-urlencoded to the configured token URL.
func (h *httpCRMAdapter) ExchangeToken(ctx context.Context, form url.Values) (models.TokenResponse, error) {
	req, err := h.request(ctx, "")
	if err != nil {
		return models.TokenResponse{}, err
	}

	resp, err := req.
		SetFormDataFromValues(form).
		Post(h.tokenURL)
	if err = h.checkResponse(operationToken, resp, err); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &token); err != nil {
		return models.TokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}

	return token, nil
}

func (h *httpCRMAdapter) rawResult(operation string, resp *resty.Response, err error) (json.RawMessage, error) {
	if err = h.checkResponse(operation, resp, err); err != nil {
		return nil, err
	}
	return json.RawMessage(resp.Body()), nil
}

func (h *httpCRMAdapter) checkResponse(operation string, resp *resty.Response, err error) error {
	if err != nil {
		metrics.RecordRemoteRequest(operation, statusNoResponse)
		return fmt.Errorf("%s request: %w", operation, err)
	}
	metrics.RecordRemoteRequest(operation, strconv.Itoa(resp.StatusCode()))

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("operation", operation).Msg("remote returned an error status")
		return err
	}
	return nil
}

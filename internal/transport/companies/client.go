// Package companies queries the premium service for companies eligible to
// receive discovery matches.
package companies

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saintgiong/discovery/internal/domain"
	"github.com/saintgiong/discovery/internal/metrics"
)

// Config holds the eligible-companies endpoint settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client fetches eligible company ids over HTTP. Each request carries a
// fresh correlation id so replies can be traced across services.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates an eligible-companies client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  cfg.Logger,
	}
}

type eligibleResponse struct {
	CompanyIDs []uuid.UUID `json:"companyIds"`
}

// EligibleCompanies returns the ids of companies authorized to receive
// matches. An empty list is a valid answer, not an error.
func (c *Client) EligibleCompanies(ctx context.Context) ([]uuid.UUID, error) {
	url := c.baseURL + "/api/v1/companies/eligible"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	correlationID := uuid.NewString()
	req.Header.Set("X-Correlation-ID", correlationID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("companies", "error").Inc()
		return nil, fmt.Errorf("%w: eligible companies: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues("companies", "error").Inc()
		return nil, fmt.Errorf("%w: eligible companies: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var body eligibleResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("companies", "error").Inc()
		return nil, fmt.Errorf("%w: decode eligible companies: %w", domain.ErrUpstreamUnavailable, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("companies", "success").Inc()
	c.logger.Debug("eligible companies fetched",
		zap.String("correlationId", correlationID),
		zap.Int("count", len(body.CompanyIDs)))
	return body.CompanyIDs, nil
}

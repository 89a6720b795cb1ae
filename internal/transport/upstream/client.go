// Package upstream reads applicant snapshots from the source-of-truth
// applicant system, used by the periodic re-sync pass.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/saintgiong/discovery/internal/domain"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	"github.com/saintgiong/discovery/internal/metrics"
)

// Config holds the upstream applicant endpoint settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client fetches applicant snapshots over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates an upstream applicant client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  cfg.Logger,
	}
}

// FetchApplicants returns a full snapshot of every upstream applicant.
func (c *Client) FetchApplicants(ctx context.Context) ([]domcand.Document, error) {
	url := c.baseURL + "/api/v1/applicants"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("applicants", "error").Inc()
		return nil, fmt.Errorf("%w: fetch applicants: %w", domain.ErrUpstreamUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues("applicants", "error").Inc()
		return nil, fmt.Errorf("%w: fetch applicants: status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	var dtos []applicantDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("applicants", "error").Inc()
		return nil, fmt.Errorf("%w: decode applicants: %w", domain.ErrUpstreamUnavailable, err)
	}

	docs := make([]domcand.Document, len(dtos))
	for i, dto := range dtos {
		docs[i] = dto.toDomain()
	}

	metrics.UpstreamRequestsTotal.WithLabelValues("applicants", "success").Inc()
	c.logger.Debug("applicants fetched", zap.Int("count", len(docs)))
	return docs, nil
}

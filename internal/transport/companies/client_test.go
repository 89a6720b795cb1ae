package companies

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saintgiong/discovery/internal/domain"
)

func TestEligibleCompanies_Success(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/companies/eligible" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("X-Correlation-ID") == "" {
			t.Error("missing correlation id header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"companyIds":["` + a.String() + `","` + b.String() + `"]}`))
	}))
	defer srv.Close()

	c := NewClient(&Config{BaseURL: srv.URL, Logger: zap.NewNop()})
	ids, err := c.EligibleCompanies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != a || ids[1] != b {
		t.Errorf("ids = %v, want [%v %v]", ids, a, b)
	}
}

func TestEligibleCompanies_EmptyListIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"companyIds":[]}`))
	}))
	defer srv.Close()

	c := NewClient(&Config{BaseURL: srv.URL, Logger: zap.NewNop()})
	ids, err := c.EligibleCompanies(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want empty", ids)
	}
}

func TestEligibleCompanies_ServerErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(&Config{BaseURL: srv.URL, Logger: zap.NewNop()})
	_, err := c.EligibleCompanies(context.Background())
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestEligibleCompanies_ConnectionRefused(t *testing.T) {
	c := NewClient(&Config{BaseURL: "http://127.0.0.1:1", Logger: zap.NewNop()})
	_, err := c.EligibleCompanies(context.Background())
	if !errors.Is(err, domain.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

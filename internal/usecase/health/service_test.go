package health

import (
	"context"
	"errors"
	"testing"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func ok(context.Context) error   { return nil }
func down(context.Context) error { return errors.New("unreachable") }

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(pingerFunc(ok), pingerFunc(ok))

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %s, want %s", report.Status, Healthy)
	}
	if report.Checks["index"] != CheckOK || report.Checks["profiles"] != CheckOK {
		t.Errorf("checks = %v", report.Checks)
	}
}

func TestCheck_IndexDownDegrades(t *testing.T) {
	svc := New(pingerFunc(down), pingerFunc(ok))

	report := svc.Check(context.Background())
	if report.Status != Degraded {
		t.Errorf("status = %s, want %s", report.Status, Degraded)
	}
	if report.Checks["index"] != CheckError {
		t.Errorf("index check = %s", report.Checks["index"])
	}
}

func TestCheck_NilProfilesSkipped(t *testing.T) {
	svc := New(pingerFunc(ok), nil)

	report := svc.Check(context.Background())
	if report.Status != Healthy {
		t.Errorf("status = %s", report.Status)
	}
	if _, present := report.Checks["profiles"]; present {
		t.Error("profiles check should be absent when no pinger is wired")
	}
}

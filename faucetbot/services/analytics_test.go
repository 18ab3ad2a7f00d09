package services

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestAnalytics_Report(t *testing.T) {
	a := NewAnalytics()
	a.LogCommand("faucet", 120*time.Millisecond, nil)
	a.LogCommand("faucet", 80*time.Millisecond, nil)
	a.LogCommand("weather", 40*time.Millisecond, errors.New("boom"))

	got := a.Report()
	for _, want := range []string{
		"Commands handled:** 3",
		"`faucet`: 2 calls",
		"avg 100ms",
		"`weather`: 1 calls",
		"1 failed",
		"Error rate:** 33.3%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Report() missing %q in:\n%s", want, got)
		}
	}
}

func TestAnalytics_EmptyReport(t *testing.T) {
	got := NewAnalytics().Report()
	if !strings.Contains(got, "Commands handled:** 0") {
		t.Errorf("Report() = %s", got)
	}
	if strings.Contains(got, "Error rate") {
		t.Error("Report() shows an error rate with no commands handled")
	}
}

func TestAnalytics_HistoryCap(t *testing.T) {
	a := NewAnalytics()
	for i := 0; i < maxHistoryEntries+100; i++ {
		a.LogCommand("faucet", time.Millisecond, nil)
	}
	a.mu.Lock()
	n := len(a.history)
	a.mu.Unlock()
	if n != maxHistoryEntries {
		t.Errorf("history length = %d, want %d", n, maxHistoryEntries)
	}
}

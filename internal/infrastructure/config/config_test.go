package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWhenMissing(t *testing.T) {
	root := t.TempDir()

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Currency != DefaultCurrency {
		t.Errorf("expected default currency %q, got %q", DefaultCurrency, cfg.Currency)
	}
	if cfg.LowStockThreshold != DefaultLowStockThreshold {
		t.Errorf("expected default threshold %d, got %d", DefaultLowStockThreshold, cfg.LowStockThreshold)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".cowork"), 0700); err != nil {
		t.Fatalf("failed to create workspace dir: %v", err)
	}

	want := &Config{Currency: "EUR", LowStockThreshold: 25}
	if err := Save(root, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Currency != "EUR" {
		t.Errorf("expected currency EUR, got %q", got.Currency)
	}
	if got.LowStockThreshold != 25 {
		t.Errorf("expected threshold 25, got %d", got.LowStockThreshold)
	}
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".cowork"), 0700); err != nil {
		t.Fatalf("failed to create workspace dir: %v", err)
	}
	if err := Save(root, &Config{Currency: "", LowStockThreshold: -3}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Currency != DefaultCurrency {
		t.Errorf("expected currency fallback to %q, got %q", DefaultCurrency, cfg.Currency)
	}
	if cfg.LowStockThreshold != DefaultLowStockThreshold {
		t.Errorf("expected threshold fallback to %d, got %d", DefaultLowStockThreshold, cfg.LowStockThreshold)
	}
}

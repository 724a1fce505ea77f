package service

import (
	"os"
	"path/filepath"
	"testing"
)

func writeModelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "booking_model.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write model file: %v", err)
	}
	return path
}

func TestLoadForecastModelAndPredict(t *testing.T) {
	// Coefficients fitted on the historical monthly booking counts.
	path := writeModelFile(t, `{"slope": 17.3, "intercept": 133.5}`)

	oracle, err := LoadForecastModel(path)
	if err != nil {
		t.Fatalf("LoadForecastModel: %v", err)
	}

	// 133.5 + 17.3*6 = 237.3 → 237
	if got := oracle.Predict(6); got != 237 {
		t.Errorf("Predict(6) = %d, want 237", got)
	}
	// 133.5 + 17.3*12 = 341.1 → 341
	if got := oracle.Predict(12); got != 341 {
		t.Errorf("Predict(12) = %d, want 341", got)
	}
}

func TestPredictFloorsAtZero(t *testing.T) {
	path := writeModelFile(t, `{"slope": -50, "intercept": 40}`)

	oracle, err := LoadForecastModel(path)
	if err != nil {
		t.Fatalf("LoadForecastModel: %v", err)
	}
	if got := oracle.Predict(3); got != 0 {
		t.Errorf("Predict(3) = %d, want 0 floor", got)
	}
}

func TestLoadForecastModelErrors(t *testing.T) {
	if _, err := LoadForecastModel(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing model file")
	}

	corrupt := writeModelFile(t, "not json")
	if _, err := LoadForecastModel(corrupt); err == nil {
		t.Error("expected error for corrupt model file")
	}

	empty := writeModelFile(t, `{}`)
	if _, err := LoadForecastModel(empty); err == nil {
		t.Error("expected error for model without coefficients")
	}
}

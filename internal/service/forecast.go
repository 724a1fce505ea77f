package service

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// ForecastOracle predicts the expected booking count for a month index.
// The core treats it as opaque; training lives in a separate pipeline.
type ForecastOracle interface {
	Predict(month int) int
}

// linearForecast is a fitted linear model over the month number, the
// exported form of the training pipeline's regression.
type linearForecast struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// LoadForecastModel reads the model coefficients from a JSON file written
// by the training pipeline.
func LoadForecastModel(path string) (ForecastOracle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read forecast model: %w", err)
	}

	var m linearForecast
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse forecast model: %w", err)
	}
	if m.Slope == 0 && m.Intercept == 0 {
		return nil, fmt.Errorf("forecast model %s has no coefficients", path)
	}

	return &m, nil
}

// Predict returns the expected booking count, rounded to the nearest whole
// booking and floored at zero.
func (m *linearForecast) Predict(month int) int {
	predicted := m.Intercept + m.Slope*float64(month)
	if predicted < 0 {
		return 0
	}
	return int(math.Round(predicted))
}

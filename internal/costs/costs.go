// Package costs maps runner labels to per-minute rates.
package costs

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultRates are the per-minute prices of the GitHub-hosted runner labels.
var DefaultRates = map[string]float64{
	"ubuntu-latest":  0.008,
	"windows-latest": 0.016,
	"macos-latest":   0.08,
}

// Rates holds per-minute rates keyed by runner label.
type Rates struct {
	Rates map[string]float64 `yaml:"rates"`
}

// Defaults returns a Rates seeded with DefaultRates.
func Defaults() *Rates {
	r := &Rates{Rates: make(map[string]float64, len(DefaultRates))}
	for label, rate := range DefaultRates {
		r.Rates[label] = rate
	}
	return r
}

// LoadRates reads a YAML rate file and merges it over the defaults.
// An empty path returns the defaults.
func LoadRates(path string) (*Rates, error) {
	r := Defaults()
	if path == "" {
		return r, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rates: %w", err)
	}
	var file Rates
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rates %s: %w", path, err)
	}
	for label, rate := range file.Rates {
		if rate < 0 {
			return nil, fmt.Errorf("parse rates %s: negative rate for %q", path, label)
		}
		r.Rates[label] = rate
	}
	return r, nil
}

// Rate returns the highest rate among labels, or 0 when none is priced.
func (r *Rates) Rate(labels []string) float64 {
	var best float64
	for _, l := range labels {
		if rate, ok := r.Rates[l]; ok && rate > best {
			best = rate
		}
	}
	return best
}

// Cost prices a billable duration for a job carrying labels.
func (r *Rates) Cost(billable time.Duration, labels []string) float64 {
	return billable.Minutes() * r.Rate(labels)
}

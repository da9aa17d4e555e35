package costs

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRates_Cost(t *testing.T) {
	r := Defaults()
	got := r.Cost(3*time.Minute, []string{"self-hosted", "ubuntu-latest", "macos-latest"})
	if math.Abs(got-0.24) > 1e-9 {
		t.Errorf("Cost want 0.24 got %v", got)
	}
	if got := r.Cost(10*time.Minute, []string{"self-hosted"}); got != 0 {
		t.Errorf("Cost of unpriced label want 0 got %v", got)
	}
}

func TestLoadRates_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	content := "rates:\n  ubuntu-latest: 0.01\n  gpu-runner: 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	r, err := LoadRates(path)
	if err != nil {
		t.Fatal(err)
	}
	if r.Rates["ubuntu-latest"] != 0.01 {
		t.Errorf("ubuntu-latest want 0.01 got %v", r.Rates["ubuntu-latest"])
	}
	if r.Rates["gpu-runner"] != 0.5 {
		t.Errorf("gpu-runner want 0.5 got %v", r.Rates["gpu-runner"])
	}
	if r.Rates["windows-latest"] != 0.016 {
		t.Errorf("windows-latest want 0.016 got %v", r.Rates["windows-latest"])
	}
}

func TestLoadRates_Errors(t *testing.T) {
	if _, err := LoadRates(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("missing file want error")
	}
	path := filepath.Join(t.TempDir(), "neg.yaml")
	if err := os.WriteFile(path, []byte("rates:\n  x: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRates(path); err == nil {
		t.Errorf("negative rate want error")
	}
}

func TestLoadRates_EmptyPath(t *testing.T) {
	r, err := LoadRates("")
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Rates) != len(DefaultRates) {
		t.Errorf("rates want %d got %d", len(DefaultRates), len(r.Rates))
	}
}

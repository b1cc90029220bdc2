package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no config file present

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Service.URL != "http://localhost:8000" {
		t.Errorf("service url = %q", cfg.Service.URL)
	}
	if cfg.Panel.PastDays != 3 {
		t.Errorf("past days = %d", cfg.Panel.PastDays)
	}
	if cfg.Map.Zoom != 5 {
		t.Errorf("zoom = %d", cfg.Map.Zoom)
	}
	if cfg.Log.File != "tilelapse.log" {
		t.Errorf("log file = %q", cfg.Log.File)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TILELAPSE_SERVICE_URL", "http://example.com:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Service.URL != "http://example.com:9000" {
		t.Errorf("env override ignored, url = %q", cfg.Service.URL)
	}
}

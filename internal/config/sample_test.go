package config

import "testing"

func TestSampleConfigsLoad(t *testing.T) {
	samples := map[string]string{
		"full.yaml":    SampleConfig(),
		"minimal.yaml": MinimalSampleConfig(),
	}
	for name, content := range samples {
		t.Run(name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), name, content)
			l := &Loader{getenv: func(string) string { return "" }}

			cfg, err := l.LoadConfig(path)
			if err != nil {
				t.Fatalf("sample config does not load: %v", err)
			}
			if cfg.AI.Provider != "ollama" {
				t.Errorf("provider = %q, want ollama", cfg.AI.Provider)
			}
			if cfg.UI.Theme != "default" {
				t.Errorf("theme = %q, want default", cfg.UI.Theme)
			}
		})
	}
}

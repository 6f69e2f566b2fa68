package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/datagov/internal/ai/providers/ollama"
	"github.com/yildizm/datagov/internal/assistant"
	"github.com/yildizm/datagov/internal/catalog"
	"github.com/yildizm/datagov/internal/config"
	"github.com/yildizm/datagov/internal/formatter"
	"github.com/yildizm/datagov/internal/logger"
)

// run executes the root command with args and returns stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// keep the developer's own config files and env out of the way
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	globalConfig = nil

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand("1.2.3", "abc123", "2026-01-01")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-emoji"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "datagov 1.2.3 (abc123) built on 2026-01-01")
	assert.Contains(t, out, "Go version:")
}

func TestCdmListFilterJSON(t *testing.T) {
	out, _, err := run(t, "cdm", "list", "--filter", "OPERATIONS", "--format", "json")
	require.NoError(t, err)

	var listing formatter.ObjectListOutput
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.Equal(t, 2, listing.Count)
	for _, o := range listing.Objects {
		assert.Equal(t, "Operations", o.Domain)
	}
}

func TestCdmListNoMatch(t *testing.T) {
	out, _, err := run(t, "cdm", "list", "--filter", "nothing-like-this")
	require.NoError(t, err)
	assert.Contains(t, out, "No objects found matching your criteria.")
}

func TestDomainsShowMarkdown(t *testing.T) {
	out, _, err := run(t, "domains", "show", "dom-01", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "## Assets")
	assert.Contains(t, out, "SR-57159")
}

func TestShowUnknownIDs(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"cdm", "show", "cdm-404"}, "object not found: cdm-404"},
		{[]string{"domains", "show", "dom-404"}, "domain not found: dom-404"},
		{[]string{"policies", "show", "pol-404"}, "policy not found: pol-404"},
		{[]string{"ask", "cdm-404"}, "object not found: cdm-404"},
	}
	for _, tt := range tests {
		t.Run(tt.args[0], func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPoliciesListCSV(t *testing.T) {
	out, _, err := run(t, "policies", "list", "--format", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 4, "header plus three policies")
	assert.True(t, strings.HasPrefix(lines[0], "ID,Name,Status"))
}

func TestUnsupportedFormat(t *testing.T) {
	_, _, err := run(t, "policies", "list", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestCatalogFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`objects:
  - {id: x-1, name: Custom_Object, domain: Lab, certification: GOLD, pii: None, frequency: Daily, classification: Internal, steward: {name: Ada}}
domains:
  - {id: d-1, name: Lab, steward: {name: Ada}, datasets: 1, cdm_objects: 1, issues: 0, quality: 99}
`), 0o600))

	out, _, err := run(t, "--catalog", path, "cdm", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Custom_Object")
	assert.NotContains(t, out, "CDM_Sales_Order_Header")
}

func TestFlagOverridesConfig(t *testing.T) {
	cmd := NewRootCommand("dev", "none", "unknown")
	require.NoError(t, cmd.ParseFlags([]string{"--theme", "minimal", "--view", "council", "--watch", "--metrics-addr", ":9999"}))

	cfg := config.DefaultConfig()
	applyFlagOverrides(cmd, cfg)
	assert.Equal(t, "minimal", cfg.UI.Theme)
	assert.Equal(t, "council", cfg.UI.StartView)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, ":9999", cfg.Metrics.Addr)
	assert.Equal(t, "", cfg.Catalog.Path, "unset flags leave the config alone")
}

func TestInvalidThemeFlag(t *testing.T) {
	_, _, err := run(t, "--theme", "neon", "version")
	// --theme is a dashboard flag; subcommands reject it
	require.Error(t, err)
}

func TestConfigInitAndValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "datagov.yaml")

	out, _, err := run(t, "config", "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration file created at: "+path)

	_, _, err = run(t, "config", "init", "--output", path)
	require.Error(t, err, "init must not overwrite without --force")

	out, _, err = run(t, "--config", path, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "AI Provider: ollama (llama3.2)")
}

func TestConfigValidateChecksProvider(t *testing.T) {
	tests := []struct {
		name    string
		models  []ollama.Model
		wantErr bool
		wantOut string
	}{
		{"model installed", []ollama.Model{{Name: "llama3.2:latest"}}, false, "AI provider ollama is reachable"},
		{"model missing", []ollama.Model{{Name: "mistral"}}, true, "ollama pull llama3.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/tags", r.URL.Path)
				_ = json.NewEncoder(w).Encode(ollama.TagsResponse{Models: tt.models})
			}))
			defer server.Close()
			t.Setenv("DATAGOV_AI_PROVIDER", "ollama")
			t.Setenv("DATAGOV_AI_ENDPOINT", server.URL)

			out, _, err := run(t, "config", "validate", "--check-provider")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Contains(t, out, "Configuration is valid")
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestConfigShowMasksAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai:\n  provider: openai\n  api_key: sk-secret\n"), 0o600))

	out, _, err := run(t, "--config", path, "config", "show", "--format", "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "sk-secret")
	assert.Contains(t, out, `"api_key": "********"`)
}

func TestAskOverOllama(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollama.GenerateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !strings.Contains(req.Prompt, "Which fields carry PII?") {
			t.Errorf("question missing from prompt: %q", req.Prompt)
		}
		if !strings.Contains(req.Prompt, "CDM_Customer_Master") {
			t.Errorf("object context missing from prompt: %q", req.Prompt)
		}
		_ = json.NewEncoder(w).Encode(ollama.GenerateResponse{Model: req.Model, Response: "Only the email.", Done: true})
	}))
	defer server.Close()
	t.Setenv("DATAGOV_AI_ENDPOINT", server.URL)
	t.Setenv("DATAGOV_AI_PROVIDER", "ollama")

	out, _, err := run(t, "ask", "cdm-002", "--raw", "Which", "fields", "carry", "PII?")
	require.NoError(t, err)
	assert.Equal(t, "Only the email.\n", out)
}

func TestAskFailurePrintsFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()
	t.Setenv("DATAGOV_AI_ENDPOINT", server.URL)
	t.Setenv("DATAGOV_AI_PROVIDER", "ollama")

	out, errOut, err := run(t, "ask", "cdm-001")
	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, assistant.FallbackAnswer)
}

func TestProviderConfigMapping(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.AI.Provider = "OpenAI"
	cfg.AI.MaxRetries = 4

	pc := providerConfig(&cfg.AI)
	assert.Equal(t, "openai", pc.Type)
	assert.Equal(t, 4, pc.MaxRetries)
	assert.Equal(t, cfg.AI.Timeout, pc.Timeout)
}

func TestUnsupportedProvider(t *testing.T) {
	_, err := createAIProvider(&config.AIConfig{Provider: "watson"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported AI provider")
	assert.Contains(t, err.Error(), "available: gemini, ollama, openai")
}

func TestCatalogWatcherExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, "gov", "catalog.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("objects:\n  - {id: a, name: A}\n"), 0o600))

	cfg := config.DefaultConfig()
	cfg.Catalog.Path = "~/gov/catalog.yaml"
	cfg.Catalog.ActivityLog = ""
	log := logger.New("test")

	cat, err := loadCatalog(cfg, log)
	require.NoError(t, err)
	assert.Equal(t, path, cat.Source)

	reloaded := make(chan *catalog.Catalog, 16)
	w := newCatalogWatcher(cfg, log, func(c *catalog.Catalog) {
		select {
		case reloaded <- c:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("objects:\n  - {id: a, name: A}\n  - {id: b, name: B}\n"), 0o600))

	deadline := time.After(3 * time.Second)
wait:
	for {
		select {
		case c := <-reloaded:
			if len(c.Objects) == 2 {
				break wait
			}
		case err := <-done:
			t.Fatalf("watcher stopped early: %v", err)
		case <-deadline:
			t.Fatal("catalog under ~ was not reloaded")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestLogsFlushedAfterCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"list", []string{"cdm", "list"}, false},
		{"show", []string{"policies", "show", "pol-001"}, false},
		{"failed show", []string{"domains", "show", "dom-404"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flushes := 0
			orig := setupLogger
			setupLogger = func(logger.Options) (func() error, error) {
				return func() error { flushes++; return nil }, nil
			}
			t.Cleanup(func() {
				setupLogger = orig
				logFlush = nil
			})

			_, _, err := run(t, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				// a failed command skips post-run; main flushes after Execute
				assert.Equal(t, 0, flushes)
				FlushLogs()
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, flushes)

			FlushLogs()
			assert.Equal(t, 1, flushes, "flushing twice must be a no-op")
		})
	}
}

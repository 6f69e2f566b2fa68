package config

// SampleConfig returns a documented configuration file with every option
func SampleConfig() string {
	return `# datagov configuration
version: "1.0"

# Data assistant used by "Analyze Health" and the ask command
ai:
  provider: ollama            # ollama | openai | gemini
  model: llama3.2
  endpoint: http://localhost:11434
  # api_key: ""               # or DATAGOV_AI_API_KEY / GEMINI_API_KEY
  timeout: 30s                # bounds one ask, including the rate limiter wait
  max_retries: 2              # openai transport retries inside the timeout
  max_tokens: 1024
  temperature: 0.2
  rate_limit: 20              # asks per minute, 0 disables the limiter

# Interactive dashboard
ui:
  theme: default              # default | high-contrast | minimal
  start_view: dashboard       # dashboard | search | cdm-list | domains-list | council | admin
  sidebar_minimized: false
  user: Sarah Jenkins
  role: Lead Data Steward

# Governance fixtures
catalog:
  # path: ./catalog.yaml      # empty uses the built-in catalog
  watch: false                # reload the dashboard when the file changes
  # activity_log: ./audit.log # stewardship events shown on the dashboard

# Non-interactive commands
output:
  default_format: terminal    # terminal | json | csv | markdown
  color_mode: auto            # auto | always | never

# The dashboard owns the terminal, so logs go to a file while it runs
logging:
  file: ~/.local/state/datagov/datagov.log
  level: warn                 # debug | info | warn | error

# Prometheus endpoint, empty disables it
metrics:
  addr: ""
`
}

// MinimalSampleConfig returns a compact configuration with the common settings
func MinimalSampleConfig() string {
	return `version: "1.0"
ai:
  provider: ollama
  model: llama3.2
ui:
  theme: default
catalog:
  watch: false
`
}

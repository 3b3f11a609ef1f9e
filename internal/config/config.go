package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file consulted when none is given.
const DefaultPath = "config/flowlm.yaml"

// ErrNoAPIConfig indicates that an LLM operation was requested without
// base_url/api_key configured.
var ErrNoAPIConfig = errors.New("config: base_url and api_key are required for LLM calls")

// Config holds all harness configuration.
//
// Env tags carry no defaults on purpose: defaults are set programmatically
// before the YAML pass so that file values survive an env.Parse with the
// variable unset. Precedence is defaults < file < environment.
type Config struct {
	// LLM endpoint (OpenAI-compatible).
	BaseURL string `yaml:"base_url" env:"FLOWLM_BASE_URL"`
	APIKey  string `yaml:"api_key" env:"FLOWLM_API_KEY"`
	Model   string `yaml:"model" env:"FLOWLM_MODEL"`

	// Description files fed into the prompt.
	ProblemFile  string `yaml:"problem_description_file" env:"FLOWLM_PROBLEM_FILE"`
	GraphFile    string `yaml:"graph_description_file" env:"FLOWLM_GRAPH_FILE"`
	FlowFile     string `yaml:"flow_description_file" env:"FLOWLM_FLOW_FILE"`
	TemplateFile string `yaml:"prompt_template_file" env:"FLOWLM_TEMPLATE_FILE"`

	// Output locations.
	ResultsDir string `yaml:"results_dir" env:"FLOWLM_RESULTS_DIR"`
	DatasetDir string `yaml:"dataset_dir" env:"FLOWLM_DATASET_DIR"`

	// Request behavior.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"FLOWLM_REQUEST_TIMEOUT"`

	// Logging.
	LogLevel string `yaml:"log_level" env:"FLOWLM_LOG_LEVEL"`
}

// defaults returns a Config with the harness's standard paths and knobs.
func defaults() *Config {
	return &Config{
		Model:          "gpt-4o",
		ProblemFile:    "config/problem_description.txt",
		GraphFile:      "config/graph_description.txt",
		FlowFile:       "config/flow_description.txt",
		ResultsDir:     "results",
		DatasetDir:     "dataset/generated",
		RequestTimeout: 5 * time.Minute,
		LogLevel:       "info",
	}
}

// Load reads path (DefaultPath when empty), then applies environment
// overrides. A missing default file is not an error; a malformed or
// explicitly named missing file is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// Optional default file; fall through to env-only config.
	default:
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}

	return cfg, nil
}

// ValidateLLM checks the fields required to call the model endpoint.
// Commands that never touch the LLM skip this.
func (c *Config) ValidateLLM() error {
	if c.BaseURL == "" || c.APIKey == "" {
		return ErrNoAPIConfig
	}
	if c.Model == "" {
		return errors.New("config: model is required")
	}

	return nil
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Paths         PathsConfig         `yaml:"paths"`
	Audio         AudioConfig         `yaml:"audio"`
	Transcription TranscriptionConfig `yaml:"transcription"`
	Gemini        GeminiConfig        `yaml:"gemini"`
	OpenAI        OpenAIConfig        `yaml:"openai"`
	Summarizer    SummarizerConfig    `yaml:"summarizer"`
	Connectivity  ConnectivityConfig  `yaml:"connectivity"`
	Organization  OrganizationConfig  `yaml:"organization"`
	Logging       LoggingConfig       `yaml:"logging"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Performance   PerformanceConfig   `yaml:"performance"`
}

type PathsConfig struct {
	Meetings string `yaml:"meetings"`
	Roster   string `yaml:"roster"`
}

type AudioConfig struct {
	SampleRate      int `yaml:"sample_rate"`
	FramesPerBuffer int `yaml:"frames_per_buffer"`
}

type TranscriptionConfig struct {
	Backend  string        `yaml:"backend"`
	Language string        `yaml:"language"`
	Timeout  time.Duration `yaml:"timeout"`
}

type GeminiConfig struct {
	Model   string   `yaml:"model"`
	APIKeys []string `yaml:"api_keys"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

type SummarizerConfig struct {
	Timeout     time.Duration `yaml:"timeout"`
	// Temperature is nil when unset; an explicit 0 is kept.
	Temperature *float32      `yaml:"temperature"`
	MaxTokens   int32         `yaml:"max_tokens"`
	// Converter is either "pandoc" or "native".
	Converter string `yaml:"converter"`
	Suffix    string `yaml:"suffix"`
}

type ConnectivityConfig struct {
	Address  string        `yaml:"address"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

type OrganizationConfig struct {
	Chair       string       `yaml:"chair"`
	Secretary   string       `yaml:"secretary"`
	CurrentUser string       `yaml:"current_user"`
	Areas       []AreaConfig `yaml:"areas"`
}

type AreaConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

const (
	envGeminiKeys = "ACTAFLOW_GEMINI_API_KEYS"
	envOpenAIKey  = "ACTAFLOW_OPENAI_API_KEY"
)

// DefaultAreas mirrors the organizational units the roster files are split by.
var DefaultAreas = []AreaConfig{
	{Name: "Innovación y Desarrollo", File: "innovacion_y_desarrollo.txt"},
	{Name: "Soporte", File: "soporte.txt"},
	{Name: "Gestión del Dato", File: "gestion_del_dato.txt"},
	{Name: "Gestión de la Información", File: "gestion_de_la_informacion.txt"},
}

// Load reads a YAML config file, applies environment overrides and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(envGeminiKeys); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		c.Gemini.APIKeys = keys
	}
	if v := os.Getenv(envOpenAIKey); v != "" {
		c.OpenAI.APIKey = v
	}
}

func (c *Config) Validate() error {
	if c.Organization.Chair == "" {
		return fmt.Errorf("organization.chair is required")
	}
	if c.Organization.Secretary == "" {
		return fmt.Errorf("organization.secretary is required")
	}

	if c.Transcription.Backend == "" {
		c.Transcription.Backend = "gemini"
	}
	switch c.Transcription.Backend {
	case "gemini", "openai":
	default:
		return fmt.Errorf("transcription.backend %q is not supported", c.Transcription.Backend)
	}

	if c.Summarizer.Converter == "" {
		c.Summarizer.Converter = "pandoc"
	}
	switch c.Summarizer.Converter {
	case "pandoc", "native":
	default:
		return fmt.Errorf("summarizer.converter %q is not supported", c.Summarizer.Converter)
	}

	if c.Paths.Meetings == "" {
		c.Paths.Meetings = "~/Documents/evarisis"
	}
	if c.Paths.Roster == "" {
		c.Paths.Roster = "roster"
	}
	c.Paths.Meetings = expandHome(c.Paths.Meetings)
	c.Paths.Roster = expandHome(c.Paths.Roster)

	if c.Audio.SampleRate == 0 {
		c.Audio.SampleRate = 16000
	}
	if c.Audio.FramesPerBuffer == 0 {
		c.Audio.FramesPerBuffer = 1024
	}
	if c.Transcription.Language == "" {
		c.Transcription.Language = "es-ES"
	}
	if c.Transcription.Timeout == 0 {
		c.Transcription.Timeout = 180 * time.Second
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "whisper-1"
	}
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.Summarizer.Timeout == 0 {
		c.Summarizer.Timeout = 5 * time.Minute
	}
	if c.Summarizer.Temperature == nil {
		t := float32(0.3)
		c.Summarizer.Temperature = &t
	}
	if c.Summarizer.MaxTokens == 0 {
		c.Summarizer.MaxTokens = 2048
	}
	if c.Summarizer.Suffix == "" {
		c.Summarizer.Suffix = "_official"
	}
	if c.Connectivity.Address == "" {
		c.Connectivity.Address = "8.8.8.8:53"
	}
	if c.Connectivity.Interval == 0 {
		c.Connectivity.Interval = 10 * time.Second
	}
	if c.Connectivity.Timeout == 0 {
		c.Connectivity.Timeout = 3 * time.Second
	}
	if c.Organization.CurrentUser == "" {
		c.Organization.CurrentUser = c.Organization.Secretary
	}
	if len(c.Organization.Areas) == 0 {
		c.Organization.Areas = append([]AreaConfig(nil), DefaultAreas...)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	return nil
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

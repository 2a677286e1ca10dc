package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Organization: OrganizationConfig{
					Chair:     "Diego mauricio peña Bolaños",
					Secretary: "Luz Adriana Ricardo",
				},
			},
			wantErr: false,
		},
		{
			name: "missing chair",
			config: Config{
				Organization: OrganizationConfig{Secretary: "Luz Adriana Ricardo"},
			},
			wantErr: true,
		},
		{
			name: "unknown backend",
			config: Config{
				Organization:  OrganizationConfig{Chair: "a", Secretary: "b"},
				Transcription: TranscriptionConfig{Backend: "sphinx"},
			},
			wantErr: true,
		},
		{
			name: "unknown converter",
			config: Config{
				Organization: OrganizationConfig{Chair: "a", Secretary: "b"},
				Summarizer:   SummarizerConfig{Converter: "libreoffice"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Organization: OrganizationConfig{Chair: "a", Secretary: "b"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Audio.SampleRate != 16000 {
		t.Errorf("SampleRate = %v, want %v", cfg.Audio.SampleRate, 16000)
	}
	if cfg.Transcription.Timeout != 180*time.Second {
		t.Errorf("Transcription.Timeout = %v, want %v", cfg.Transcription.Timeout, 180*time.Second)
	}
	if cfg.Summarizer.Temperature == nil || *cfg.Summarizer.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", cfg.Summarizer.Temperature)
	}
	if cfg.Summarizer.MaxTokens != 2048 {
		t.Errorf("MaxTokens = %v, want %v", cfg.Summarizer.MaxTokens, 2048)
	}
	if cfg.Connectivity.Address != "8.8.8.8:53" {
		t.Errorf("Connectivity.Address = %v, want %v", cfg.Connectivity.Address, "8.8.8.8:53")
	}
	if cfg.Organization.CurrentUser != "b" {
		t.Errorf("CurrentUser = %v, want %v", cfg.Organization.CurrentUser, "b")
	}
	if len(cfg.Organization.Areas) != len(DefaultAreas) {
		t.Errorf("len(Areas) = %v, want %v", len(cfg.Organization.Areas), len(DefaultAreas))
	}
	if strings.HasPrefix(cfg.Paths.Meetings, "~") {
		t.Errorf("Meetings = %v, want home expanded", cfg.Paths.Meetings)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
paths:
  meetings: "data/meetings"
  roster: "data/roster"

transcription:
  backend: "openai"
  timeout: 90s

openai:
  api_key: "sk-test"

summarizer:
  converter: "native"
  timeout: 2m
  temperature: 0

organization:
  chair: "Diego mauricio peña Bolaños"
  secretary: "Luz Adriana Ricardo"
  areas:
    - name: "Soporte"
      file: "soporte.txt"

logging:
  level: "debug"
`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Meetings != "data/meetings" {
		t.Errorf("Meetings = %v, want %v", cfg.Paths.Meetings, "data/meetings")
	}
	if cfg.Transcription.Timeout != 90*time.Second {
		t.Errorf("Transcription.Timeout = %v, want %v", cfg.Transcription.Timeout, 90*time.Second)
	}
	if cfg.Summarizer.Timeout != 2*time.Minute {
		t.Errorf("Summarizer.Timeout = %v, want %v", cfg.Summarizer.Timeout, 2*time.Minute)
	}
	if cfg.Summarizer.Temperature == nil || *cfg.Summarizer.Temperature != 0 {
		t.Errorf("Temperature = %v, want explicit 0 kept", cfg.Summarizer.Temperature)
	}
	if len(cfg.Organization.Areas) != 1 || cfg.Organization.Areas[0].Name != "Soporte" {
		t.Errorf("Areas = %v, want single Soporte area", cfg.Organization.Areas)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
organization:
  chair: "a"
  secretary: "b"
gemini:
  api_keys: ["from-file"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envGeminiKeys, "k1, k2,,")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[1] != "k2" {
		t.Errorf("APIKeys = %v, want [k1 k2]", cfg.Gemini.APIKeys)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

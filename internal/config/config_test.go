package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("NOTE_EXCERPT_CHARS", "")

	cfg := Load()
	if cfg.NoteExcerptChars != 400 {
		t.Fatalf("expected default note excerpt 400, got %d", cfg.NoteExcerptChars)
	}
	if cfg.DocumentExcerptChars != 500 {
		t.Fatalf("expected default document excerpt 500, got %d", cfg.DocumentExcerptChars)
	}
	if cfg.OnlineSampleChars != 2000 {
		t.Fatalf("expected default online sample 2000, got %d", cfg.OnlineSampleChars)
	}
	if cfg.OpenAIAPIKey != "" {
		t.Fatalf("expected no api key by default")
	}
	if cfg.OpenAITemperature != 0.2 {
		t.Fatalf("expected default temperature 0.2, got %v", cfg.OpenAITemperature)
	}
	if cfg.NATSSubject != "reminders.due" {
		t.Fatalf("expected default reminder subject, got %q", cfg.NATSSubject)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("NOTE_EXCERPT_CHARS", "120")
	t.Setenv("API_RATE_LIMIT_RPS", "5.5")

	cfg := Load()
	if cfg.OpenAIAPIKey != "sk-test" {
		t.Fatalf("expected env api key, got %q", cfg.OpenAIAPIKey)
	}
	if cfg.NoteExcerptChars != 120 {
		t.Fatalf("expected env note excerpt 120, got %d", cfg.NoteExcerptChars)
	}
	if cfg.APIRateLimitRPS != 5.5 {
		t.Fatalf("expected env rate limit 5.5, got %v", cfg.APIRateLimitRPS)
	}
}

func TestLoadYAMLFileLosesToEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("api_port: \"9999\"\nopenai_model: gpt-4o-mini\nnote_excerpt_chars: 250\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("API_PORT", "7070")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("NOTE_EXCERPT_CHARS", "")

	cfg := Load()
	if cfg.APIPort != "7070" {
		t.Fatalf("expected env to win over file, got %q", cfg.APIPort)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Fatalf("expected file value for model, got %q", cfg.OpenAIModel)
	}
	if cfg.NoteExcerptChars != 250 {
		t.Fatalf("expected file value for note excerpt, got %d", cfg.NoteExcerptChars)
	}
}

func TestLoadIgnoresMissingConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("API_PORT", "")

	cfg := Load()
	if cfg.APIPort != "8080" {
		t.Fatalf("expected defaults when config file missing, got %q", cfg.APIPort)
	}
}

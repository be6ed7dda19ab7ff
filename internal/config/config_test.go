package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	config := Default()

	if config.Validation.DefaultExperienceLevel != "beginner" {
		t.Errorf("expected DefaultExperienceLevel 'beginner', got '%s'", config.Validation.DefaultExperienceLevel)
	}
	if config.Validation.Strict {
		t.Error("expected Strict to be false by default")
	}
	if config.Store.Path != "" {
		t.Errorf("expected empty Store.Path, got '%s'", config.Store.Path)
	}
	if config.Logging.Level != "info" {
		t.Errorf("expected Logging.Level 'info', got '%s'", config.Logging.Level)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
validation:
  default_experience_level: intermediate
  strict: true

store:
  path: /tmp/entrain-test.db

logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Validation.DefaultExperienceLevel != "intermediate" {
		t.Errorf("expected DefaultExperienceLevel 'intermediate', got '%s'", config.Validation.DefaultExperienceLevel)
	}
	if !config.Validation.Strict {
		t.Error("expected Strict to be true")
	}
	if config.Store.Path != "/tmp/entrain-test.db" {
		t.Errorf("expected Store.Path '/tmp/entrain-test.db', got '%s'", config.Store.Path)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level 'debug', got '%s'", config.Logging.Level)
	}
}

func TestLoadFromFilePartialKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
logging:
  level: trace
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Logging.Level != "trace" {
		t.Errorf("expected Logging.Level 'trace', got '%s'", config.Logging.Level)
	}
	if config.Validation.DefaultExperienceLevel != "beginner" {
		t.Errorf("expected untouched DefaultExperienceLevel 'beginner', got '%s'", config.Validation.DefaultExperienceLevel)
	}
}

func TestLoadFromFileExpandsEnvVars(t *testing.T) {
	t.Setenv("ENTRAIN_TEST_DIR", "/var/data")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
store:
  path: ${ENTRAIN_TEST_DIR}/entrain.db
`
	if err := os.WriteFile(configPath, []byte(configContent), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	config, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if config.Store.Path != "/var/data/entrain.db" {
		t.Errorf("expected expanded Store.Path, got '%s'", config.Store.Path)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ENTRAIN_EXPERIENCE_LEVEL", "advanced")
	t.Setenv("ENTRAIN_STRICT", "1")
	t.Setenv("ENTRAIN_STORE_PATH", "/tmp/override.db")
	t.Setenv("ENTRAIN_LOG_LEVEL", "debug")

	config := Default()
	applyEnvOverrides(config)

	if config.Validation.DefaultExperienceLevel != "advanced" {
		t.Errorf("expected DefaultExperienceLevel 'advanced', got '%s'", config.Validation.DefaultExperienceLevel)
	}
	if !config.Validation.Strict {
		t.Error("expected Strict to be true")
	}
	if config.Store.Path != "/tmp/override.db" {
		t.Errorf("expected Store.Path '/tmp/override.db', got '%s'", config.Store.Path)
	}
	if config.Logging.Level != "debug" {
		t.Errorf("expected Logging.Level 'debug', got '%s'", config.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	config := Default()
	config.Validation.DefaultExperienceLevel = "wizard"

	err := config.Validate()
	if err == nil {
		t.Fatal("expected error for invalid experience level")
	}
	if !strings.Contains(err.Error(), "wizard") {
		t.Errorf("error should name the bad level: %v", err)
	}

	config = Default()
	config.Logging.Level = "verbose"
	if err := config.Validate(); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestStorePathDefault(t *testing.T) {
	config := Default()

	path, err := config.StorePath()
	if err != nil {
		t.Fatalf("StorePath failed: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(".entrain", "entrain.db")) {
		t.Errorf("expected default path under .entrain, got '%s'", path)
	}

	config.Store.Path = "/explicit/path.db"
	path, _ = config.StorePath()
	if path != "/explicit/path.db" {
		t.Errorf("expected explicit path, got '%s'", path)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnv_SetsMissingVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# MarketMaya credentials\nMM_BEARER_TOKEN=tok-123\nexport MM_BASE_URL=\"https://example.test/api\"\nADMIN_PASSWORD='p w'\nBROKEN LINE\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	for _, key := range []string{"MM_BEARER_TOKEN", "MM_BASE_URL", "ADMIN_PASSWORD"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv error: %v", err)
	}

	if got := os.Getenv("MM_BEARER_TOKEN"); got != "tok-123" {
		t.Fatalf("MM_BEARER_TOKEN = %q", got)
	}
	if got := os.Getenv("MM_BASE_URL"); got != "https://example.test/api" {
		t.Fatalf("MM_BASE_URL = %q", got)
	}
	if got := os.Getenv("ADMIN_PASSWORD"); got != "p w" {
		t.Fatalf("ADMIN_PASSWORD = %q", got)
	}
}

func TestLoadDotEnv_DoesNotOverrideExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("MM_BEARER_TOKEN=from_file\n"), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("MM_BEARER_TOKEN", "from_env")
	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv error: %v", err)
	}
	if got := os.Getenv("MM_BEARER_TOKEN"); got != "from_env" {
		t.Fatalf("MM_BEARER_TOKEN = %q", got)
	}
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("LoadDotEnv error: %v", err)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t,
		"addr: ':8080'\njwt_ttl: 1h\ncomment_max_len: 500\ntrending_limit: 5\n",
		"jwt_key: 'secret'\nopenai_api_key: 'sk-test'\n",
	)

	cfg := MustLoad(dir)

	if cfg.Public.Addr != ":8080" {
		t.Errorf("unexpected addr: %s", cfg.Public.Addr)
	}
	if cfg.JwtTTL() != time.Hour {
		t.Errorf("unexpected jwt ttl: %s", cfg.JwtTTL())
	}
	if cfg.JwtKey() != "secret" {
		t.Errorf("unexpected jwt key")
	}
	if cfg.OpenAIKey() != "sk-test" {
		t.Errorf("unexpected openai key")
	}
	if cfg.Public.TrendingLimit != 5 {
		t.Errorf("unexpected trending limit: %d", cfg.Public.TrendingLimit)
	}
}

func TestMustLoadDefaults(t *testing.T) {
	dir := writeConfigs(t, "addr: ':8080'\n", "jwt_key: 'k'\n")

	cfg := MustLoad(dir)

	if cfg.Public.CommentMaxLen != 500 {
		t.Errorf("expected default comment_max_len 500, got %d", cfg.Public.CommentMaxLen)
	}
	if cfg.Public.NotificationCap != 100 {
		t.Errorf("expected default notification_cap 100, got %d", cfg.Public.NotificationCap)
	}
	if cfg.Public.AiModel != "gpt-4o-mini" {
		t.Errorf("expected default ai model, got %s", cfg.Public.AiModel)
	}
}

func TestMustLoadMissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config folder, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}

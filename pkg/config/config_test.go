package config

import (
	"testing"
	"time"

	"github.com/Anson-Quek/weverse-go/pkg/lib/log"
)

func TestLoad(t *testing.T) {
	t.Setenv("WEVERSE_EMAIL", "user@example.com")
	t.Setenv("WEVERSE_PASSWORD", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Weverse.Email != "user@example.com" {
		t.Errorf("Email = %q, want %q", cfg.Weverse.Email, "user@example.com")
	}
	if cfg.Stream.PollInterval != 20*time.Second {
		t.Errorf("PollInterval = %v, want 20s", cfg.Stream.PollInterval)
	}
	if cfg.Stream.NotificationWindow != 10*time.Minute {
		t.Errorf("NotificationWindow = %v, want 10m", cfg.Stream.NotificationWindow)
	}
	if cfg.Log.Level != log.LogLevelInfo {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, log.LogLevelInfo)
	}
}

func TestLoadRejectsInvalidEmail(t *testing.T) {
	t.Setenv("WEVERSE_EMAIL", "not-an-email")
	t.Setenv("WEVERSE_PASSWORD", "secret")

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want validation error")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WEVERSE_EMAIL", "user@example.com")
	t.Setenv("WEVERSE_PASSWORD", "secret")
	t.Setenv("POLL_INTERVAL", "45s")
	t.Setenv("COMMENT_WINDOW", "2m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Stream.PollInterval != 45*time.Second {
		t.Errorf("PollInterval = %v, want 45s", cfg.Stream.PollInterval)
	}
	if cfg.Stream.CommentWindow != 2*time.Minute {
		t.Errorf("CommentWindow = %v, want 2m", cfg.Stream.CommentWindow)
	}
}

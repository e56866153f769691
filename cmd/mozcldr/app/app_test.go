package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	mozcldr "github.com/flodolo/moz-cldr-data"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	chdir(t, t.TempDir())

	config, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	config.L10nPath = t.TempDir()
	config.CLDRPath = t.TempDir()
	config.LogOutput = "discard"

	app, err := New("1.2.3", "abc123", "2025-01-01", "test", WithConfig(config))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return app
}

func TestNew(t *testing.T) {
	app := newTestApp(t)

	if app.Version() != "1.2.3" || app.Commit() != "abc123" || app.Date() != "2025-01-01" || app.BuiltBy() != "test" {
		t.Error("version information not stored")
	}
	if app.Logger() == nil {
		t.Error("logger not initialized")
	}
	if _, err := New("dev", "", "", "", WithConfig(nil)); err == nil {
		t.Error("WithConfig(nil) should fail")
	}
}

func TestClientIsCached(t *testing.T) {
	app := newTestApp(t)

	first, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed: %v", err)
	}
	second, err := app.Client()
	if err != nil {
		t.Fatalf("Client() failed: %v", err)
	}
	if first != second {
		t.Error("Client() without options should return the cached instance")
	}

	custom, err := app.Client(mozcldr.WithBaseline(false))
	if err != nil {
		t.Fatalf("Client(opts) failed: %v", err)
	}
	if custom == first {
		t.Error("Client(opts) should build a new instance")
	}
	if custom.Tables().Overrides.Len() == 0 {
		t.Error("embedded overrides not loaded")
	}
}

func TestExecuteVersion(t *testing.T) {
	app := newTestApp(t)

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"version", "-v", "--log-level", "error"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if !strings.Contains(out.String(), "mozcldr 1.2.3") || !strings.Contains(out.String(), "commit:   abc123") {
		t.Errorf("unexpected version output: %q", out.String())
	}
}

func TestExecuteRejectsUnknownFormat(t *testing.T) {
	app := newTestApp(t)

	if err := app.Execute(context.Background(), []string{"version", "-o", "wide"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestExecuteLocales(t *testing.T) {
	app := newTestApp(t)

	root := app.createRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"locales", "-o", "json"})

	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != "[]" {
		t.Errorf("empty l10n tree should list no locales, got %q", out.String())
	}
}

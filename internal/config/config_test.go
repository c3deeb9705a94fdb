package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/invoicer/font"
	"github.com/npillmayer/schuko/tracing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatal(err)
	}
	if cfg.Fonts.Regular != font.DefaultRTLPath || cfg.Fonts.Family != font.DefaultRTLFamily {
		t.Errorf("unexpected font defaults %+v", cfg.Fonts)
	}
	if cfg.Page.Width != 210 || cfg.Page.Height != 297 || cfg.Page.Margin != 15 {
		t.Errorf("expected A4 page, have %+v", cfg.Page)
	}
	if cfg.Documents.MaxLogoBytes() != 2*1024*1024 {
		t.Errorf("expected 2MB logo limit, have %d", cfg.Documents.MaxLogoBytes())
	}
	if cfg.Server.Addr != ":8080" || cfg.Server.BodyLimitBytes() != 8*1024*1024 {
		t.Errorf("unexpected server defaults %+v", cfg.Server)
	}
	if cfg.TraceLevel() != tracing.LevelInfo {
		t.Errorf("expected trace level info")
	}
}

func TestLoadWithOverlay(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, BaseConfigFile, `
trace = "debug"

[fonts]
regular = "assets/Amiri-Regular.ttf"

[page]
width = 216.0
height = 279.0

[server]
addr = ":9000"
`)
	writeFile(t, dir, "config.test.toml", `
[page]
margin = 20.0

[server]
body_limit = "1MB"
`)
	t.Setenv(EnvInvoicerEnv, "test")
	cfg, err := Load(base)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Finalize(); err != nil {
		t.Fatal(err)
	}
	if cfg.Fonts.Regular != "assets/Amiri-Regular.ttf" {
		t.Errorf("unexpected font path %q", cfg.Fonts.Regular)
	}
	if cfg.Page.Width != 216 || cfg.Page.Height != 279 || cfg.Page.Margin != 20 {
		t.Errorf("overlay not merged into page, have %+v", cfg.Page)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.BodyLimitBytes() != 1024*1024 {
		t.Errorf("overlay not merged into server, have %+v", cfg.Server)
	}
	if cfg.TraceLevel() != tracing.LevelDebug {
		t.Errorf("expected trace level debug")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvInvoicerFont, "/opt/fonts/Amiri.ttf")
	t.Setenv(EnvInvoicerAddr, "127.0.0.1:7000")
	t.Setenv(EnvInvoicerTrace, "error")
	cfg := &Config{Server: ServerConfig{Addr: ":9000"}}
	if err := cfg.Finalize(); err != nil {
		t.Fatal(err)
	}
	if cfg.Fonts.Regular != "/opt/fonts/Amiri.ttf" {
		t.Errorf("font path not overridden, have %q", cfg.Fonts.Regular)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("address not overridden, have %q", cfg.Server.Addr)
	}
	if cfg.TraceLevel() != tracing.LevelError {
		t.Errorf("trace level not overridden")
	}
}

func TestValidation(t *testing.T) {
	for i, cfg := range []*Config{
		{Trace: "verbose"},
		{Documents: DocumentConfig{MaxLogoSize: "lots"}},
		{Server: ServerConfig{BodyLimit: "-"}},
		{Server: ServerConfig{ShutdownTimeout: "soon"}},
	} {
		if err := cfg.Finalize(); err == nil {
			t.Errorf("test #%d: expected configuration to be rejected", i)
		}
	}
	cfg := &Config{}
	cfg.Page.Width, cfg.Page.Margin = 20, 15
	if err := cfg.Finalize(); err == nil {
		t.Errorf("expected margins filling the page to be rejected")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing configuration file")
	}
}

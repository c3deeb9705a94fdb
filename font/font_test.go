package font

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/invoicer/bidi"
	"github.com/npillmayer/invoicer/core"
	"github.com/npillmayer/invoicer/internal/testutil"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestResolve(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	reg := NewRegistry(Handle{Regular: []byte("fake")})
	if h := reg.Resolve(bidi.LeftToRight); !h.Builtin || h.Family != "Helvetica" {
		t.Errorf("expected LTR to resolve to builtin Helvetica, is %v", h)
	}
	h := reg.Resolve(bidi.RightToLeft)
	if h.Builtin || h.Family != DefaultRTLFamily {
		t.Errorf("expected RTL to resolve to embedded Amiri, is %v", h)
	}
	if h.HasBold() {
		t.Errorf("RTL handle without bold data should not claim a bold style")
	}
}

func TestLoadMissingAsset(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := Load(Config{Regular: filepath.Join(t.TempDir(), "missing.ttf")})
	var cerr *core.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected configuration error, have %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected error to wrap os.ErrNotExist, is %v", err)
	}
}

func TestLoadRejectsNonTrueType(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, []byte("<html>not a font</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(Config{Regular: path}); !errors.Is(err, errNotTTF) {
		t.Errorf("expected errNotTTF, have %v", err)
	}
}

func TestMustLoadPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected MustLoad to panic")
		}
	}()
	MustLoad(Config{Regular: filepath.Join(t.TempDir(), "missing.ttf")})
}

func TestLoadArabicFont(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg, err := Load(Config{Regular: testutil.ArabicFont()})
	if err != nil {
		t.Fatal(err)
	}
	h := reg.Resolve(bidi.RightToLeft)
	if len(h.Regular) == 0 || h.Builtin {
		t.Errorf("expected font data to be loaded, have %v", h)
	}
	if h.Family != DefaultRTLFamily {
		t.Errorf("expected default family %q, have %q", DefaultRTLFamily, h.Family)
	}
}

package font

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/docker/go-units"
	"github.com/npillmayer/invoicer/bidi"
	"github.com/npillmayer/invoicer/core"
)

// Default font settings.
const (
	DefaultRTLPath   = "fonts/Amiri-Regular.ttf"
	DefaultRTLFamily = "Amiri"
	BuiltinFamily    = "Helvetica"
)

// Handle describes a typeface. Handles of embedded fonts carry the
// TrueType data; they must not be modified after creation.
type Handle struct {
	Family  string
	Builtin bool   // a PDF core font, nothing to embed
	Regular []byte // TrueType data of the regular style
	Bold    []byte // TrueType data of the bold style, may be nil
}

// HasBold is true if the typeface has a bold style.
func (h Handle) HasBold() bool {
	return h.Builtin || len(h.Bold) > 0
}

// Builtin is the handle of the core font.
var Builtin = Handle{Family: BuiltinFamily, Builtin: true}

// Config locates the right-to-left font asset.
type Config struct {
	Family  string // defaults to DefaultRTLFamily
	Regular string // path, defaults to DefaultRTLPath
	Bold    string // optional path
}

// Registry resolves writing directions to typefaces.
type Registry struct {
	rtl Handle
}

// NewRegistry creates a registry from an already loaded right-to-left
// typeface.
func NewRegistry(rtl Handle) *Registry {
	if rtl.Family == "" {
		rtl.Family = DefaultRTLFamily
	}
	return &Registry{rtl: rtl}
}

// Resolve returns the typeface for a writing direction. Right-to-left
// documents use the embedded font for all of their text, including Latin
// runs.
func (r *Registry) Resolve(dir bidi.Direction) Handle {
	if dir == bidi.RightToLeft {
		return r.rtl
	}
	return Builtin
}

// Load reads the right-to-left font asset. Errors are of type
// *core.ConfigurationError.
func Load(cfg Config) (*Registry, error) {
	if cfg.Regular == "" {
		cfg.Regular = DefaultRTLPath
	}
	h := Handle{Family: cfg.Family}
	var err error
	if h.Regular, err = readTrueType(cfg.Regular); err != nil {
		return nil, err
	}
	if cfg.Bold != "" {
		if h.Bold, err = readTrueType(cfg.Bold); err != nil {
			return nil, err
		}
	}
	return NewRegistry(h), nil
}

// MustLoad is like Load, but panics on error. It is intended for process
// initialization.
func MustLoad(cfg Config) *Registry {
	r, err := Load(cfg)
	if err != nil {
		panic(err)
	}
	return r
}

var (
	sfntVersion1 = []byte{0x00, 0x01, 0x00, 0x00}
	sfntTrue     = []byte("true")
	errNotTTF    = errors.New("not a TrueType font file")
)

func readTrueType(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.ConfigurationError{Asset: path, Err: err}
	}
	if len(data) < 12 || !(bytes.HasPrefix(data, sfntVersion1) || bytes.HasPrefix(data, sfntTrue)) {
		return nil, &core.ConfigurationError{Asset: path, Err: errNotTTF}
	}
	T().Infof("font: loaded %s, %s", path, units.HumanSize(float64(len(data))))
	return data, nil
}

func (h Handle) String() string {
	if h.Builtin {
		return fmt.Sprintf("%s (builtin)", h.Family)
	}
	return fmt.Sprintf("%s (embedded, %s)", h.Family, units.HumanSize(float64(len(h.Regular))))
}

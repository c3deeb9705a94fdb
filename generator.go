package invoicer

import (
	"errors"
	"time"

	"github.com/docker/go-units"
	"github.com/npillmayer/invoicer/compose"
	"github.com/npillmayer/invoicer/core"
	"github.com/npillmayer/invoicer/document"
	"github.com/npillmayer/invoicer/font"
	"github.com/npillmayer/invoicer/i18n"
	"github.com/npillmayer/invoicer/pdfinfo"
	"github.com/npillmayer/invoicer/render"
)

// Intent tells what a document is generated for.
type Intent int8

// Intents. Documents for download need at least one line item.
const (
	Preview Intent = iota
	Download
)

func (i Intent) String() string {
	if i == Download {
		return "download"
	}
	return "preview"
}

// DefaultMaxLogoSize is the default limit for logo images.
const DefaultMaxLogoSize = 2 * units.MiB

// Artifact is a generated document.
type Artifact struct {
	Data     []byte
	FileName string // suggested file name, "<kind>_<number>.pdf"
	Pages    int
}

// Generator produces PDF documents from records.
type Generator struct {
	fonts    *font.Registry
	page     render.PageConfig
	maxLogo  int64
	composer *compose.Composer
	copts    []compose.Option
}

// Option configures a Generator.
type Option func(*Generator)

// WithPageConfig sets the page geometry. The default is render.A4().
func WithPageConfig(cfg render.PageConfig) Option {
	return func(g *Generator) {
		g.page = cfg
	}
}

// WithMaxLogoSize limits the size of logo images, in bytes.
func WithMaxLogoSize(n int64) Option {
	return func(g *Generator) {
		g.maxLogo = n
	}
}

// WithClock sets the clock for the timestamps of documents.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		g.copts = append(g.copts, compose.WithClock(now))
	}
}

// New creates a generator using the typefaces of fonts.
func New(fonts *font.Registry, opts ...Option) *Generator {
	g := &Generator{
		fonts:   fonts,
		page:    render.A4(),
		maxLogo: DefaultMaxLogoSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.composer = compose.New(fonts, g.copts...)
	return g
}

// Generate validates rec, composes and renders it. rec is not modified.
func (g *Generator) Generate(rec *document.Record, intent Intent) (*Artifact, error) {
	snapshot := rec.Clone()
	dict := i18n.For(snapshot.Language)
	if err := g.validate(snapshot, dict, intent); err != nil {
		return nil, err
	}
	doc, err := g.composer.Compose(snapshot, dict)
	if err != nil {
		return nil, err
	}
	data, err := render.Render(doc, g.page)
	if err != nil {
		var rerr *core.RenderError
		if errors.As(err, &rerr) {
			rerr.Message = renderMessage(dict, rerr)
		}
		return nil, err
	}
	pages, err := pdfinfo.PageCount(data)
	if err != nil {
		return nil, err
	}
	CT().Debugf("generated %s for %s, %d pages", doc.FileName, intent, pages)
	return &Artifact{Data: data, FileName: doc.FileName, Pages: pages}, nil
}

// renderMessage localizes the message of a render error with a known cause.
func renderMessage(dict i18n.Dictionary, rerr *core.RenderError) string {
	switch rerr.Cause {
	case core.CauseOverflow:
		if rerr.Row < 0 {
			return dict.Messagef(i18n.MsgTextTooTall)
		}
		return dict.Messagef(i18n.MsgRowTooTall)
	case core.CauseImage:
		return dict.Messagef(i18n.MsgLogoFormat)
	}
	return rerr.Message
}

package compose

import (
	"strings"
	"time"

	"github.com/npillmayer/invoicer/bidi"
	"github.com/npillmayer/invoicer/document"
	"github.com/npillmayer/invoicer/font"
	"github.com/npillmayer/invoicer/i18n"
	"github.com/npillmayer/invoicer/layout"
	"github.com/npillmayer/invoicer/shaping"
	"golang.org/x/text/cases"
)

// Creator is put into the metadata of every document.
const Creator = "invoicer"

// Composer builds layout documents from records.
type Composer struct {
	fonts *font.Registry
	now   func() time.Time
}

// Option configures a Composer.
type Option func(*Composer)

// WithClock sets the clock used for the render timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) {
		c.now = now
	}
}

// New creates a composer resolving typefaces from fonts.
func New(fonts *font.Registry, opts ...Option) *Composer {
	c := &Composer{fonts: fonts, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose creates the layout of rec, labelled from dict. The record is
// not modified. An incomplete dictionary results in a *core.ValidationError.
func (c *Composer) Compose(rec *document.Record, dict i18n.Dictionary) (*layout.Document, error) {
	if err := i18n.Validate(dict); err != nil {
		return nil, err
	}
	now := c.now()
	dir := rec.Language.Direction()
	b := &builder{
		rec:    rec,
		dict:   dict,
		dir:    dir,
		accent: rec.AccentColor(),
		now:    now,
	}
	kind := b.kindLabel()
	doc := &layout.Document{
		Meta: layout.Metadata{
			Title:    kind + " " + rec.Number,
			Subject:  dict.Lookup(i18n.DocumentType) + ": " + kind,
			Keywords: dict.Lookup(i18n.ServicesProducts) + ": " + descriptions(rec.Items),
			Creator:  Creator,
			Created:  now,
		},
		FileName:  FileName(kind, rec.Number),
		Direction: dir,
		Font:      c.fonts.Resolve(dir),
	}
	doc.Blocks = append(doc.Blocks,
		b.header(),
		spacer("header-space", 20),
		b.parties(),
		spacer("parties-space", 20),
		b.heading("details", i18n.Details, false),
		b.items(),
	)
	doc.Blocks = append(doc.Blocks, b.terms()...)
	T().Debugf("compose: %s %s, %s, %d blocks", kind, rec.Number, dir, len(doc.Blocks))
	return doc, nil
}

// FileName derives the suggested file name of a document. Path separators
// in the number are replaced.
func FileName(kind, number string) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '-'
		}
		return r
	}, number)
	return kind + "_" + clean + ".pdf"
}

func descriptions(items []document.LineItem) string {
	d := make([]string, 0, len(items))
	for _, item := range items {
		if item.Description != "" {
			d = append(d, item.Description)
		}
	}
	return strings.Join(d, ", ")
}

// --- Builder ---------------------------------------------------------------

// builder holds the inputs of a single composition.
type builder struct {
	rec    *document.Record
	dict   i18n.Dictionary
	dir    bidi.Direction
	accent document.RGB
	now    time.Time
}

func (b *builder) shape(s string) string {
	return shaping.Shape(s, b.dir)
}

// punct orders separators like the colon after a label. They carry no
// strong direction of their own and follow the direction of the document.
func (b *builder) punct(s string) string {
	return bidi.Visual(s, b.dir)
}

func (b *builder) label(k i18n.Key) string {
	return b.shape(b.dict.Lookup(k))
}

func (b *builder) kindLabel() string {
	if b.rec.Kind == document.Quote {
		return b.dict.Lookup(i18n.Quote)
	}
	return b.dict.Lookup(i18n.Invoice)
}

// title is upper-cased for scripts with case, then shaped.
func (b *builder) title() string {
	t := b.kindLabel()
	if !b.dir.IsRTL() {
		t = cases.Upper(b.rec.Language.Tag()).String(t)
	}
	return b.shape(t)
}

// labelled creates a line "label: value". Label and value are shaped one
// by one.
func (b *builder) labelled(k i18n.Key, value string, style layout.TextStyle) layout.Line {
	return layout.NewLine(
		layout.Span{Text: b.label(k), Style: style},
		layout.Span{Text: b.punct(": "), Style: style},
		layout.Span{Text: b.shape(value), Style: style},
	)
}

// lines splits multi-line text and shapes each line.
func (b *builder) lines(text string, style layout.TextStyle) []layout.Line {
	var lines []layout.Line
	for _, l := range strings.Split(text, "\n") {
		lines = append(lines, layout.NewLine(layout.Span{Text: b.shape(strings.TrimRight(l, "\r")), Style: style}))
	}
	return lines
}

func spacer(name string, h float64) *layout.SpacerBlock {
	return &layout.SpacerBlock{Name: name, Height: h}
}

// issued is the issue date combined with the render time.
func (b *builder) issued() string {
	return strings.TrimSpace(b.rec.Issued.Display() + " " + b.now.Format("15:04"))
}

package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/invoicer/compose"
	"github.com/npillmayer/invoicer/core"
	"github.com/npillmayer/invoicer/document"
	"github.com/npillmayer/invoicer/font"
	"github.com/npillmayer/invoicer/i18n"
	"github.com/npillmayer/invoicer/internal/testutil"
	"github.com/npillmayer/invoicer/layout"
	"github.com/npillmayer/invoicer/pdfinfo"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

// monospace measures every rune as half of the font size.
type monospace struct{}

func (monospace) Width(text string, st layout.TextStyle) float64 {
	return float64(len([]rune(text))) * st.FontSize() * 0.5
}

func composeSample(t *testing.T, lang document.Language, items int) *layout.Document {
	t.Helper()
	c := compose.New(font.NewRegistry(font.Handle{Regular: []byte("test")}),
		compose.WithClock(func() time.Time {
			return time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)
		}))
	rec := testutil.SampleRecord(lang, items)
	doc, err := c.Compose(rec, i18n.For(lang))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

// headerTexts returns the texts of the item table's header row on a page.
func headerTexts(page Page) []string {
	var texts []string
	for _, op := range page.Ops {
		if op.Kind == OpText && op.Block == "items" && op.Row == 0 {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

func hasItemRows(page Page) bool {
	for _, op := range page.Ops {
		if op.Block == "items" && op.Row > 0 {
			return true
		}
	}
	return false
}

func TestPageOverflowRepeatsHeader(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	doc := composeSample(t, document.English, 200)
	cfg := PageConfig{Width: 210, Height: 240, Margin: 15} // ~30 item rows per page
	plan, err := Paginate(doc, cfg, monospace{})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Pages) < 6 {
		t.Fatalf("expected 200 items to span at least 6 pages, have %d", len(plan.Pages))
	}
	first := strings.Join(headerTexts(plan.Pages[0]), "|")
	if first != "Description|Quantity|Unit Price|VAT (%)|VAT Amount|Total" {
		t.Errorf("unexpected header row %q", first)
	}
	_, _, top := cfg.points()
	for i, page := range plan.Pages {
		if !hasItemRows(page) {
			continue
		}
		if h := strings.Join(headerTexts(page), "|"); h != first {
			t.Errorf("page %d: expected header row %q, have %q", i+1, first, h)
		}
		if i == 0 {
			continue
		}
		for _, op := range page.Ops {
			if op.Block == "items" && op.Row == 0 && op.Kind == OpFill && op.Y != top {
				t.Errorf("page %d: header row should start at the top margin, is at %.1f", i+1, op.Y)
			}
		}
	}
}

func TestRowsAreNotSplit(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	doc := composeSample(t, document.English, 120)
	cfg := PageConfig{Width: 210, Height: 200, Margin: 15}
	plan, err := Paginate(doc, cfg, monospace{})
	if err != nil {
		t.Fatal(err)
	}
	_, h, m := cfg.points()
	seen := make(map[int]int) // row -> page
	for i, page := range plan.Pages {
		for _, op := range page.Ops {
			if op.Y+op.H > h-m+0.001 {
				t.Errorf("page %d: op of block %s exceeds the bottom margin", i+1, op.Block)
			}
			if op.Block != "items" || op.Row <= 0 {
				continue
			}
			if p, ok := seen[op.Row]; ok && p != i {
				t.Errorf("row %d split across pages %d and %d", op.Row, p+1, i+1)
			}
			seen[op.Row] = i
		}
	}
}

func TestGridAndRule(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	doc := composeSample(t, document.English, 2)
	plan, err := Paginate(doc, A4(), monospace{})
	if err != nil {
		t.Fatal(err)
	}
	if len(plan.Pages) != 1 {
		t.Fatalf("expected a single page, have %d", len(plan.Pages))
	}
	rules, frames := 0, 0
	for _, op := range plan.Pages[0].Ops {
		if op.Block != "items" {
			continue
		}
		switch op.Kind {
		case OpFrame:
			frames++
			if op.Row > 2 {
				t.Errorf("total row %d should not have grid lines", op.Row)
			}
		case OpLine:
			rules++
			if op.Row != 3 || op.Color != document.DefaultAccent {
				t.Errorf("rule should be above the first total row in the accent color")
			}
		}
	}
	if rules != 1 {
		t.Errorf("expected exactly one rule, have %d", rules)
	}
	if frames != 3*6 {
		t.Errorf("expected grid around header and 2 data rows, have %d frames", frames)
	}
}

func TestRowTooTall(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var lines []layout.Line
	for i := 0; i < 100; i++ {
		lines = append(lines, layout.NewLine(layout.Span{Text: "line"}))
	}
	doc := &layout.Document{Blocks: []layout.Block{&layout.TableBlock{
		Name: "items",
		Rows: []layout.Row{
			{Kind: layout.HeaderRow, Cells: []layout.Cell{{Lines: lines[:1]}}},
			{Kind: layout.DataRow, Cells: []layout.Cell{{Lines: lines}}},
		},
		RepeatHeader: true,
	}}}
	_, err := Paginate(doc, PageConfig{Width: 100, Height: 100, Margin: 10}, monospace{})
	var rerr *core.RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected render error, have %v", err)
	}
	if rerr.Block != "items" || rerr.Row != 1 {
		t.Errorf("expected offending row items/1, have %s/%d", rerr.Block, rerr.Row)
	}
}

func TestRightToLeftMirrorsColumns(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	doc := composeSample(t, document.Arabic, 1)
	plan, err := Paginate(doc, A4(), monospace{})
	if err != nil {
		t.Fatal(err)
	}
	w, _, m := A4().points()
	var descX, totalX float64
	for _, op := range plan.Pages[0].Ops {
		if op.Kind != OpFrame || op.Block != "items" || op.Row != 0 {
			continue
		}
		if descX == 0 {
			descX = op.X + op.W // first column
		}
		totalX = op.X // last column
	}
	if descX < w-m-0.001 || totalX > m+0.001 {
		t.Errorf("expected description column at the right, total at the left; have %.1f, %.1f", descX, totalX)
	}
	// start-aligned text is flushed right
	right := 0.0
	for _, op := range plan.Pages[0].Ops {
		if op.Block == "details" && op.Kind == OpText {
			right = max(right, op.X+op.W)
		}
	}
	if right < w-m-0.001 || right > w-m+0.001 {
		t.Errorf("expected details heading to end at the right margin, ends at %.1f", right)
	}
}

func TestWrapLine(t *testing.T) {
	l := layout.NewLine(layout.Span{Text: "aa bb cc dd"})
	lines := wrapLine(l, 30, false, monospace{}) // 5pt per rune, 6 runes per line
	if len(lines) != 2 || lines[0].spans[0].Text != "aa bb" || lines[1].spans[0].Text != "cc dd" {
		t.Errorf("unexpected LTR wrapping %+v", lines)
	}
	// text of an RTL line is in visual order: the logical first word is at the right
	lines = wrapLine(layout.NewLine(layout.Span{Text: "aa bb cc dd"}), 30, true, monospace{})
	if len(lines) != 2 || lines[0].spans[0].Text != "cc dd" || lines[1].spans[0].Text != "aa bb" {
		t.Errorf("unexpected RTL wrapping %+v", lines)
	}
	short := wrapLine(layout.NewLine(layout.Span{Text: "a"}, layout.Span{Text: ": "}), 100, false, monospace{})
	if len(short) != 1 || len(short[0].spans) != 2 {
		t.Errorf("short lines should be kept as they are")
	}
}

func spanTexts(vl visualLine) []string {
	var texts []string
	for _, s := range vl.spans {
		texts = append(texts, s.Text)
	}
	return texts
}

func TestWrapLabelledLine(t *testing.T) {
	l := layout.NewLine(
		layout.Span{Text: "Email"},
		layout.Span{Text: ": "},
		layout.Span{Text: "billing@neuratech.example"},
	)
	lines := wrapLine(l, 60, false, monospace{})
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, have %d", len(lines))
	}
	if x := strings.Join(spanTexts(lines[0]), ""); x != "Email:" {
		t.Errorf("label and colon should stay together, have %q", x)
	}
	if x := strings.Join(spanTexts(lines[1]), ""); x != "billing@neuratech.example" {
		t.Errorf("unexpected second line %q", x)
	}
	// spans of an RTL line are in logical order, their texts in visual order
	l = layout.NewLine(layout.Span{Text: "ab"}, layout.Span{Text: " :"}, layout.Span{Text: "cd ef"})
	lines = wrapLine(l, 20, true, monospace{})
	if len(lines) != 3 {
		t.Fatalf("expected 3 RTL lines, have %d", len(lines))
	}
	if x := spanTexts(lines[0]); len(x) != 2 || x[0] != "ab" || x[1] != ":" {
		t.Errorf("unexpected first RTL line %q", x)
	}
	if x := spanTexts(lines[1]); len(x) != 1 || x[0] != "ef" {
		t.Errorf("unexpected second RTL line %q", x)
	}
	// a whitespace-only span separates its neighbours
	l = layout.NewLine(layout.Span{Text: "Checks"}, layout.Span{Text: " "}, layout.Span{Text: "Yes"})
	lines = wrapLine(l, 1000, false, monospace{})
	if x := strings.Join(spanTexts(lines[0]), ""); x != "Checks Yes" {
		t.Errorf("unexpected unwrapped line %q", x)
	}
	lines = wrapLine(layout.NewLine(
		layout.Span{Text: "Checks"}, layout.Span{Text: " "}, layout.Span{Text: "Yes plus more"}), 50, false, monospace{})
	if x := strings.Join(spanTexts(lines[0]), ""); x != "Checks Yes" {
		t.Errorf("expected a space between spans separated by whitespace, have %q", x)
	}
}

func TestPhysicalAlignment(t *testing.T) {
	if physical(layout.Start, false) != alignLeft || physical(layout.Start, true) != alignRight {
		t.Errorf("start alignment broken")
	}
	if physical(layout.End, false) != alignRight || physical(layout.End, true) != alignLeft {
		t.Errorf("end alignment broken")
	}
	if physical(layout.Center, true) != alignCenter {
		t.Errorf("center alignment broken")
	}
}

func TestPageConfig(t *testing.T) {
	if err := A4().Validate(); err != nil {
		t.Error(err)
	}
	if err := (PageConfig{Width: 100, Height: 100, Margin: 50}).Validate(); err == nil {
		t.Errorf("expected margins filling the page to be rejected")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	doc := composeSample(t, document.French, 5)
	first, err := Render(doc, A4())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Render(composeSample(t, document.French, 5), A4())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("rendering the same document twice should yield identical bytes")
	}
	if !bytes.HasPrefix(first, []byte("%PDF-")) {
		t.Errorf("output is not a PDF")
	}
}

func TestRenderMultiplePages(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	doc := composeSample(t, document.English, 200)
	data, err := Render(doc, A4())
	if err != nil {
		t.Fatal(err)
	}
	info, err := pdfinfo.Inspect(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.Pages < 2 {
		t.Errorf("expected 200 items to span several pages, have %d", info.Pages)
	}
}

func TestRenderArabic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	reg, err := font.Load(font.Config{Regular: testutil.ArabicFont()})
	if err != nil {
		t.Fatal(err)
	}
	render := func() []byte {
		rec := testutil.SampleRecord(document.Arabic, 3)
		doc, err := compose.New(reg, compose.WithClock(func() time.Time {
			return time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)
		})).Compose(rec, i18n.For(document.Arabic))
		if err != nil {
			t.Fatal(err)
		}
		data, err := Render(doc, A4())
		if err != nil {
			t.Fatal(err)
		}
		return data
	}
	data := render()
	if _, err := pdfinfo.Inspect(data); err != nil {
		t.Errorf("invalid PDF: %v", err)
	}
	if !bytes.Equal(data, render()) {
		t.Errorf("rendering an Arabic document twice should yield identical bytes")
	}
}

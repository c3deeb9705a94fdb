package bidi

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func ExampleVisual() {
	fmt.Println(Visual("سلام 89", RightToLeft))
	// Output: 89 مالس
}

func ExampleDirectionOf() {
	for _, s := range []string{"سلام 89", "30 rue 6667", "+216 20 000 000"} {
		dir, ok := DirectionOf(s)
		fmt.Println(dir, ok)
	}
	// Output:
	// RTL true
	// LTR true
	// LTR false
}

func TestLeftToRightUnchanged(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	inputs := []string{"Hello (World)!", "sum = $12453.00", "Facture n° 42", ""}
	for _, input := range inputs {
		if v := Visual(input, LeftToRight); v != input {
			t.Errorf("expected %q to stay unchanged, is %q", input, v)
		}
	}
}

var visualTests = []struct {
	input, visual string
	base          Direction
}{
	{"سلام", "مالس", RightToLeft},
	{"سلام 89", "89 مالس", RightToLeft},
	{"abc", "abc", RightToLeft},
	{"فاتورة ABC", "ABC ةروتاف", RightToLeft},
	{"(س)", "(س)", RightToLeft},
	{"car אבג wash", "car גבא wash", LeftToRight},
	{"الكمية 123.50", "123.50 ةيمكلا", RightToLeft},
}

func TestVisualOrder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for i, test := range visualTests {
		if v := Visual(test.input, test.base); v != test.visual {
			t.Errorf("test #%d: expected %+q, have %+q", i, test.visual, v)
		}
	}
}

func TestDirectionOf(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for i, test := range []struct {
		input string
		dir   Direction
		ok    bool
	}{
		{"", LeftToRight, false},
		{"19/10/2026 14:30", LeftToRight, false},
		{"123 فاتورة", RightToLeft, true},
		{"(ACME) مؤسسة", LeftToRight, true},
		{"\ufe96\ufef4\ufe91", RightToLeft, true}, // presentation forms are AL
		{"אבג", RightToLeft, true},
		{"٣٤", LeftToRight, false}, // Arabic-Indic digits are AN, not strong
	} {
		dir, ok := DirectionOf(test.input)
		if dir != test.dir || ok != test.ok {
			t.Errorf("test #%d: expected %v/%v, have %v/%v", i, test.dir, test.ok, dir, ok)
		}
	}
}

func TestLevels(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	levels := Levels("abc אב", LeftToRight)
	expected := []int{0, 0, 0, 0, 1, 1}
	if len(levels) != len(expected) {
		t.Fatalf("expected %d levels, have %d", len(expected), len(levels))
	}
	for i, l := range expected {
		if levels[i] != l {
			t.Errorf("expected level of rune #%d to be %d, is %d", i, l, levels[i])
		}
	}
}

func TestTrailingWhitespace(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	levels := Levels("س ab  ", RightToLeft)
	if levels[len(levels)-1] != 1 || levels[len(levels)-2] != 1 {
		t.Errorf("trailing whitespace should be reset to paragraph level 1, levels = %v", levels)
	}
}

func TestBracketPairs(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	p := newParagraph("a ( b [ c ) d ]", LeftToRight)
	pairs := p.findBracketPairs(p.sequence())
	if len(pairs) != 1 {
		t.Fatalf("expected 1 bracket pair, have %d", len(pairs))
	}
	if pairs[0].opening != 2 || pairs[0].closing != 10 {
		t.Errorf("expected pairing 2-10, have %d-%d", pairs[0].opening, pairs[0].closing)
	}
	p = newParagraph("a ( b ( c ) d )", LeftToRight)
	pairs = p.findBracketPairs(p.sequence())
	if len(pairs) != 2 || pairs[0].opening != 2 || pairs[1].opening != 6 {
		t.Errorf("expected pairings 2-14, 6-10, have %v", pairs)
	}
}

func TestMirroring(t *testing.T) {
	if mirror('(') != ')' || mirror(']') != '[' || mirror('«') != '»' {
		t.Errorf("mirroring of brackets broken")
	}
	if mirror('a') != 'a' {
		t.Errorf("'a' should not be mirrored")
	}
}

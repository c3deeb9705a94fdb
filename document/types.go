package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/npillmayer/invoicer/bidi"
	"golang.org/x/text/language"
)

// --- Kind ------------------------------------------------------------------

// Kind is the type of document to produce.
type Kind int8

// Kinds of documents. The zero value is Invoice.
const (
	Invoice Kind = iota
	Quote
)

func (k Kind) String() string {
	if k == Quote {
		return "quote"
	}
	return "invoice"
}

// ParseKind accepts "invoice" and "quote", case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "invoice", "":
		return Invoice, nil
	case "quote":
		return Quote, nil
	}
	return Invoice, fmt.Errorf("document: unknown kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) (err error) {
	*k, err = ParseKind(string(b))
	return
}

// --- Language --------------------------------------------------------------

// Language is one of the supported document languages.
type Language int8

// Supported languages. The zero value is English.
const (
	English Language = iota
	French
	Arabic
	numLanguages
)

// Languages lists all supported languages.
var Languages = []Language{English, French, Arabic}

var languageTags = [numLanguages]language.Tag{language.English, language.French, language.Arabic}

var matcher = language.NewMatcher(languageTags[:])

// Tag returns the BCP 47 tag of l.
func (l Language) Tag() language.Tag {
	if l < 0 || l >= numLanguages {
		return language.Und
	}
	return languageTags[l]
}

// Direction returns the writing direction of l.
func (l Language) Direction() bidi.Direction {
	if l == Arabic {
		return bidi.RightToLeft
	}
	return bidi.LeftToRight
}

func (l Language) String() string {
	return l.Tag().String()
}

// ParseLanguage matches a BCP 47 language tag against the supported
// languages. Regional variants are accepted, e.g. "fr-CA" or "ar-SA".
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return English, fmt.Errorf("document: %w", err)
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return English, fmt.Errorf("document: unsupported language %q", s)
	}
	return Language(index), nil
}

func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Language) UnmarshalText(b []byte) (err error) {
	if len(b) == 0 {
		*l = English
		return nil
	}
	*l, err = ParseLanguage(string(b))
	return
}

// --- Date ------------------------------------------------------------------

// Date is a calendar date without time zone. The zero value represents an
// absent date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses the text form 2006-01-02. An empty string yields the
// zero Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("document: invalid date %q", s)
	}
	return DateOf(t), nil
}

// IsZero is true for absent dates.
func (d Date) IsZero() bool {
	return d == Date{}
}

// String returns the text form 2006-01-02, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Display returns d in the form printed on documents, day/month/year.
func (d Date) Display() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// In returns the time at midnight of d in location loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) (err error) {
	*d, err = ParseDate(string(b))
	return
}

// --- RGB -------------------------------------------------------------------

// RGB is an opaque color.
type RGB struct {
	R, G, B uint8
}

// DefaultAccent is the accent color used when a record does not set one.
var DefaultAccent = RGB{0x1a, 0x23, 0x7e}

// ParseRGB parses colors of the form #rrggbb.
func ParseRGB(s string) (RGB, error) {
	var c RGB
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return c, fmt.Errorf("document: color %q is not of form #rrggbb", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return c, fmt.Errorf("document: color %q is not of form #rrggbb", s)
	}
	return c, nil
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *RGB) UnmarshalText(b []byte) (err error) {
	*c, err = ParseRGB(string(b))
	return
}

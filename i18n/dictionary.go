package i18n

import (
	"fmt"

	"github.com/npillmayer/invoicer/core"
	"github.com/npillmayer/invoicer/document"
	"github.com/npillmayer/invoicer/shaping"
)

// Dictionary maps keys to the labels of one language. Dictionaries are
// values and read-only; they may be shared between goroutines.
type Dictionary struct {
	lang   document.Language
	labels [NumKeys]string
}

var builtin = [...]*[NumKeys]string{
	document.English: &english,
	document.French:  &french,
	document.Arabic:  &arabic,
}

// For returns the built-in dictionary for lang.
func For(lang document.Language) Dictionary {
	d := Dictionary{lang: lang}
	if int(lang) >= 0 && int(lang) < len(builtin) {
		d.labels = *builtin[lang]
	}
	return d
}

// New creates a dictionary from a map of labels. Keys missing in labels
// stay empty and are reported by Validate.
func New(lang document.Language, labels map[Key]string) Dictionary {
	d := Dictionary{lang: lang}
	for k, l := range labels {
		if k >= 0 && k < NumKeys {
			d.labels[k] = l
		}
	}
	return d
}

// Language returns the language of d.
func (d Dictionary) Language() document.Language {
	return d.lang
}

// Lookup returns the label for k in logical order.
func (d Dictionary) Lookup(k Key) string {
	if k < 0 || k >= NumKeys {
		return ""
	}
	return d.labels[k]
}

// Shaped returns the label for k, shaped for the direction of the
// dictionary's language.
func (d Dictionary) Shaped(k Key) string {
	return shaping.Shape(d.Lookup(k), d.lang.Direction())
}

// Messagef formats the message k with args and shapes the result.
func (d Dictionary) Messagef(k Key, args ...interface{}) string {
	msg := d.Lookup(k)
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return shaping.Shape(msg, d.lang.Direction())
}

// Validate checks that d has a non-empty label for every key. The error
// message is taken from the built-in dictionary of d's language.
func Validate(d Dictionary) error {
	for k := Key(0); k < NumKeys; k++ {
		if d.labels[k] == "" {
			return &core.ValidationError{
				Key:     "labels." + k.String(),
				Message: For(d.lang).Messagef(MsgMissingLabel, k.String()),
			}
		}
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/google/uuid"
	"github.com/npillmayer/invoicer/document"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/pelletier/go-toml/v2"
)

// recordFile is the layout of a record file. Language shadows the field of
// the record to tell an absent language from English.
type recordFile struct {
	document.Record
	Language *document.Language `toml:"language"`
}

// readRecord loads a record file and completes it. lang overrides the
// language of the record; locale is asked if neither is given.
func readRecord(path, lang string, locale func() (string, error)) (*document.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	var file recordFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse record %s: %w", path, err)
	}
	rec := file.Record
	switch {
	case lang != "":
		if rec.Language, err = document.ParseLanguage(lang); err != nil {
			return nil, err
		}
	case file.Language != nil:
		rec.Language = *file.Language
	default:
		rec.Language = localeLanguage(locale)
	}
	if rec.Number == "" {
		rec.Number = uuid.NewString()[:8]
	}
	if rec.Issued.IsZero() {
		rec.Issued = document.DateOf(time.Now())
	}
	if rec.Logo != nil && rec.Logo.Name != "" && len(rec.Logo.Data) == 0 {
		logo := rec.Logo.Name
		if !filepath.IsAbs(logo) {
			logo = filepath.Join(filepath.Dir(path), logo)
		}
		if rec.Logo.Data, err = os.ReadFile(logo); err != nil {
			return nil, fmt.Errorf("read logo: %w", err)
		}
	}
	return &rec, nil
}

func systemLocale() (string, error) {
	return jj.DetectIETF()
}

func localeLanguage(locale func() (string, error)) document.Language {
	userLocale, err := locale()
	if err != nil {
		gtrace.CoreTracer.Infof("no user locale, using English: %v", err)
		return document.English
	}
	lang, err := document.ParseLanguage(userLocale)
	if err != nil {
		gtrace.CoreTracer.Infof("user locale %v not supported, using English", userLocale)
		return document.English
	}
	gtrace.CoreTracer.Infof("detected user locale %v", userLocale)
	return lang
}

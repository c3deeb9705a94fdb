/*
Command invoicer generates an invoice or a quote from a TOML record file.

	invoicer -in record.toml [-out dir] [-lang ar] [-preview] [-config config.toml]

Amounts and dates may be given as strings or as bare TOML values:

	kind   = "invoice"
	number = "2026-0042"
	date   = "2026-10-19"

	[supplier]
	name = "Neuratech Solutions"

	[[items]]
	description = "Consulting"
	quantity    = 3
	unit_price  = "10.00"
	vat_rate    = "19"

A missing number is replaced by a random one, a missing language by the
language of the user's locale. The PDF is written to the output directory
under its suggested file name.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/npillmayer/invoicer"
	"github.com/npillmayer/invoicer/font"
	"github.com/npillmayer/invoicer/internal/config"
	"github.com/npillmayer/invoicer/pdfinfo"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	configPath := flag.String("config", "", "configuration file")
	in := flag.String("in", "", "record file (TOML)")
	out := flag.String("out", ".", "output directory")
	lang := flag.String("lang", "", "document language (en, fr, ar)")
	preview := flag.Bool("preview", false, "generate a preview, allowing records without items")
	flag.Parse()
	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("config load failed: ", err)
	}
	if err := cfg.Finalize(); err != nil {
		log.Fatal("config finalize failed: ", err)
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(cfg.TraceLevel())

	fonts, err := font.Load(cfg.Fonts.Font())
	if err != nil {
		log.Fatal(err)
	}
	rec, err := readRecord(*in, *lang, systemLocale)
	if err != nil {
		log.Fatal(err)
	}
	intent := invoicer.Download
	if *preview {
		intent = invoicer.Preview
	}
	gen := invoicer.New(fonts,
		invoicer.WithPageConfig(cfg.Page.PageConfig),
		invoicer.WithMaxLogoSize(cfg.Documents.MaxLogoBytes()))
	artifact, err := gen.Generate(rec, intent)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	path := filepath.Join(*out, artifact.FileName)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		log.Fatal(err)
	}
	info, err := pdfinfo.Inspect(artifact.Data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %s\n", path, info)
}

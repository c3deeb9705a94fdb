// Command invoicerd serves invoice and quote documents over HTTP.
//
//	POST /api/documents?intent=download|preview   JSON record in, PDF out
//	GET  /healthz
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/npillmayer/invoicer"
	"github.com/npillmayer/invoicer/font"
	"github.com/npillmayer/invoicer/internal/config"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	path := config.BaseConfigFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if _, err := os.Stat(path); err != nil {
		path = ""
	}
	cfg, err := config.Load(path)
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
	gen := invoicer.New(fonts,
		invoicer.WithPageConfig(cfg.Page.PageConfig),
		invoicer.WithMaxLogoSize(cfg.Documents.MaxLogoBytes()))
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: newRouter(gen, cfg.Server.BodyLimitBytes()),
	}

	go func() {
		gtrace.CoreTracer.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed: ", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("shutdown failed: ", err)
	}
	log.Println("server stopped gracefully")
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/npillmayer/invoicer"
	"github.com/npillmayer/invoicer/core"
	"github.com/npillmayer/invoicer/document"
	"github.com/npillmayer/schuko/gtrace"
)

// errorResponse is the JSON body of failed requests. Message is in the
// language of the record, if the record could be read.
type errorResponse struct {
	Error string `json:"error"`
	Key   string `json:"key,omitempty"`
}

type documents struct {
	gen       *invoicer.Generator
	bodyLimit int64
	now       func() time.Time
}

func newRouter(gen *invoicer.Generator, bodyLimit int64) http.Handler {
	d := &documents{gen: gen, bodyLimit: bodyLimit, now: time.Now}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", handleHealthCheck)
	r.Route("/api", func(r chi.Router) {
		r.Post("/documents", d.create)
	})
	return r
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// create generates a document from a JSON record.
func (d *documents) create(w http.ResponseWriter, r *http.Request) {
	var intent invoicer.Intent
	switch r.URL.Query().Get("intent") {
	case "", "download":
		intent = invoicer.Download
	case "preview":
		intent = invoicer.Preview
	default:
		writeError(w, http.StatusBadRequest, errorResponse{Error: "unknown intent"})
		return
	}
	if d.bodyLimit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, d.bodyLimit)
	}
	var rec document.Record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
			return
		}
		writeError(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid record: %v", err)})
		return
	}
	if rec.Number == "" {
		rec.Number = uuid.NewString()[:8]
	}
	if rec.Issued.IsZero() {
		rec.Issued = document.DateOf(d.now())
	}
	artifact, err := d.gen.Generate(&rec, intent)
	if err != nil {
		var verr *core.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusUnprocessableEntity, errorResponse{Error: verr.Message, Key: verr.Key})
			return
		}
		gtrace.CoreTracer.Errorf("generating %s %s: %v", rec.Kind, rec.Number, err)
		var rerr *core.RenderError
		if errors.As(err, &rerr) {
			writeError(w, http.StatusInternalServerError, errorResponse{Error: rerr.Message})
			return
		}
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "document generation failed"})
		return
	}
	disposition := "attachment"
	if intent == invoicer.Preview {
		disposition = "inline"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", contentDisposition(disposition, artifact.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.Header().Set("X-Page-Count", strconv.Itoa(artifact.Pages))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Data)
}

// contentDisposition formats the header after RFC 6266. Names with
// characters outside printable ASCII get an ASCII fallback in filename and
// the full name in filename* (RFC 8187).
func contentDisposition(disposition, name string) string {
	fallback := asciiFileName(name)
	v := fmt.Sprintf("%s; filename=%q", disposition, fallback)
	if fallback != name {
		v += "; filename*=UTF-8''" + encodeExtValue(name)
	}
	return v
}

// asciiFileName drops runes outside printable ASCII and quoting characters.
func asciiFileName(name string) string {
	ascii := strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return -1
		}
		return r
	}, name)
	ascii = strings.TrimLeft(ascii, "_-")
	if ascii == "" || strings.HasPrefix(ascii, ".") {
		ascii = "document" + ascii
	}
	return ascii
}

// encodeExtValue percent-encodes all bytes but attr-char of RFC 8187.
func encodeExtValue(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9') ||
			strings.IndexByte("!#$&+-.^_`|~", c) >= 0 {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, body errorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

package pdfinfo

import (
	"bytes"
	"testing"

	"github.com/go-pdf/fpdf"
)

func twoPages(t *testing.T) []byte {
	t.Helper()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for i := 0; i < 2; i++ {
		pdf.AddPage()
		pdf.Cell(40, 10, "page")
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestInspect(t *testing.T) {
	data := twoPages(t)
	info, err := Inspect(data)
	if err != nil {
		t.Fatal(err)
	}
	if info.Pages != 2 {
		t.Errorf("expected 2 pages, have %d", info.Pages)
	}
	if info.Size != int64(len(data)) {
		t.Errorf("size mismatch")
	}
	n, err := PageCount(data)
	if err != nil || n != 2 {
		t.Errorf("expected page count 2, have %d (%v)", n, err)
	}
}

func TestInspectRejectsGarbage(t *testing.T) {
	if _, err := Inspect([]byte("%PDF-1.4\nnot really")); err == nil {
		t.Errorf("expected error for a broken document")
	}
}

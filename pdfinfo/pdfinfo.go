/*
Package pdfinfo inspects generated documents. It counts pages and checks
the structure of a PDF file, using pdfcpu.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package pdfinfo

import (
	"bytes"
	"fmt"

	"github.com/docker/go-units"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// keep pdfcpu from creating a configuration directory for the user
	model.ConfigPath = "disable"
}

// Info summarizes a PDF document.
type Info struct {
	Pages int
	Size  int64 // in bytes
}

func (i Info) String() string {
	return fmt.Sprintf("%d pages, %s", i.Pages, units.HumanSize(float64(i.Size)))
}

// Inspect validates data as a PDF document and counts its pages.
func Inspect(data []byte) (*Info, error) {
	conf := model.NewDefaultConfiguration()
	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return nil, fmt.Errorf("pdfinfo: invalid document: %w", err)
	}
	n, err := api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfinfo: %w", err)
	}
	return &Info{Pages: n, Size: int64(len(data))}, nil
}

// PageCount returns the number of pages of a PDF document.
func PageCount(data []byte) (int, error) {
	n, err := api.PageCount(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return 0, fmt.Errorf("pdfinfo: %w", err)
	}
	return n, nil
}

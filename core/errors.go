package core

import (
	"errors"
	"fmt"
)

// ConfigurationError is returned when a required asset cannot be loaded.
type ConfigurationError struct {
	Asset string // path or name of the asset
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration: cannot load %s: %v", e.Asset, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError flags unusable input. Key names the offending field, e.g.
// "items[2].quantity", Message is meant for display to the end user.
type ValidationError struct {
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return "validation: " + e.Message
	}
	return fmt.Sprintf("validation: %s: %s", e.Key, e.Message)
}

// RenderCause classifies render errors.
type RenderCause int8

const (
	CauseUnknown  RenderCause = iota
	CauseOverflow             // a row or a line does not fit onto an empty page
	CauseImage                // an image cannot be embedded
)

// RenderError reports a layout failure. Block identifies the layout block,
// Row is the table row within the block or -1.
type RenderError struct {
	Block   string
	Row     int
	Cause   RenderCause
	Message string
}

func (e *RenderError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("render: block %s: %s", e.Block, e.Message)
	}
	return fmt.Sprintf("render: block %s, row %d: %s", e.Block, e.Row, e.Message)
}

// IsValidation is a shortcut for errors.As with a *ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// IsRender is a shortcut for errors.As with a *RenderError.
func IsRender(err error) bool {
	var rerr *RenderError
	return errors.As(err, &rerr)
}

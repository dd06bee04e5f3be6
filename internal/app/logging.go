package app

import (
	"fmt"
	"io"
	"log"
	"os"
)

// NewLogger returns a logger writing to path, or to fallback when path is
// empty. The returned close function is never nil.
func NewLogger(path string, fallback io.Writer) (*log.Logger, func() error, error) {
	if path == "" {
		if fallback == nil {
			fallback = io.Discard
		}
		return log.New(fallback, "lowtter: ", log.LstdFlags), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "lowtter: ", log.LstdFlags), f.Close, nil
}

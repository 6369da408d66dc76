package main

import (
	"io"

	"github.com/partiallyordered/getsfattr/internal/config"
)

// showConfig prints cfg as YAML. The output can be saved as a configuration
// file.
func showConfig(w io.Writer, cfg *config.Config) error {
	out, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

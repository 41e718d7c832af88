// Package report renders final rover states for display.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"marsrover/internal/interpreter"
)

// ErrUnknownFormat is returned for a format name that has no writer.
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "yaml"}

// Rover is the serialised form of a final rover state.
type Rover struct {
	X           int    `json:"x" yaml:"x"`
	Y           int    `json:"y" yaml:"y"`
	Orientation string `json:"orientation" yaml:"orientation"`
	Status      string `json:"status" yaml:"status"`
}

func FromRover(r interpreter.Rover) Rover {
	return Rover{
		X:           r.Position().X,
		Y:           r.Position().Y,
		Orientation: r.Orientation().String(),
		Status:      r.Status().String(),
	}
}

// Write renders rovers to w in the named format, in the order given.
func Write(w io.Writer, format string, rovers []interpreter.Rover) error {
	switch format {
	case "text":
		return writeText(w, rovers)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(convert(rovers))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(convert(rovers)); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w %q (expected one of %v)", ErrUnknownFormat, format, Formats)
}

// CheckFormat reports whether format is one Write accepts.
func CheckFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("%w %q (expected one of %v)", ErrUnknownFormat, format, Formats)
}

func writeText(w io.Writer, rovers []interpreter.Rover) error {
	for _, r := range rovers {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}

func convert(rovers []interpreter.Rover) []Rover {
	out := make([]Rover, len(rovers))
	for i, r := range rovers {
		out[i] = FromRover(r)
	}
	return out
}

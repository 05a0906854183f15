// Package output renders rule-check reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/boardgame-rules/internal/config"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *Report) error

	// Close writes any pending output.
	Close() error
}

// NewWriter returns the writer for format.
func NewWriter(w io.Writer, format config.OutputFormat) ReportWriter {
	if format == config.JSON {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w)
}

// TextWriter writes reports as plain text, one section per line.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes r immediately.
func (tw *TextWriter) WriteReport(r *Report) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ruleset: %s\n", r.RuleSet)
	if len(r.Board) > 0 {
		for _, line := range r.Board {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	if len(r.History) > 0 {
		fmt.Fprintf(&sb, "history: %s\n", strings.Join(r.History, " "))
	}
	if r.Termination != nil {
		fmt.Fprintf(&sb, "termination: %s (%s)\n", r.Termination.Kind, r.Termination.Result)
	} else {
		fmt.Fprintf(&sb, "to move: %s\n", r.Next)
		fmt.Fprintf(&sb, "legal plies (%d): %s\n", len(r.Plies), strings.Join(r.Plies, " "))
	}
	if r.Perft != nil {
		fmt.Fprintf(&sb, "perft(%d): %d\n", r.Perft.Depth, r.Perft.Nodes)
		for _, d := range r.Perft.Divide {
			fmt.Fprintf(&sb, "  %s: %d\n", d.Ply, d.Nodes)
		}
	}
	_, err := io.WriteString(tw.w, sb.String())
	return err
}

// Close is a no-op for text output.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter buffers reports and writes them as a JSON array on Close.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport buffers r.
func (jw *JSONWriter) WriteReport(r *Report) error {
	jw.reports = append(jw.reports, r)
	return nil
}

// Close writes all buffered reports.
func (jw *JSONWriter) Close() error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Reports: jw.reports})
	jw.reports = nil
	return err
}

package info

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Write renders r in the given format.
func Write(w io.Writer, r Report, format string, verbosity int) error {
	switch format {
	case "", FormatText:
		return WriteText(w, r, verbosity)
	case FormatYAML:
		return WriteYAML(w, r)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// WriteText renders the human-readable report. Verbosity 1 adds the
// available sequences and the complete frames of each sequence; verbosity
// 2 also states when a sequence has no incomplete frames.
func WriteText(w io.Writer, r Report, verbosity int) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "Frames")
	fmt.Fprintln(bw, "------")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Frame sequences available: %d (total: %d)\n", len(r.Available), r.Expected)
	if verbosity > 0 {
		fmt.Fprintf(bw, "Available: %s\n", joinRanges(r.Available))
	}
	fmt.Fprintf(bw, "Missing: %s\n", joinRanges(r.Missing))
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Available frame sequences:")
	fmt.Fprintln(bw, "sequence: complete/incomplete")

	for _, seq := range r.Sequences {
		fmt.Fprintf(bw, "%8s: %d/%d\n", seq.Name, len(seq.Complete), len(seq.Incomplete))
		if len(seq.Incomplete) > 0 {
			fmt.Fprintln(bw, "Incomplete frame sets:")
			for _, frame := range seq.IncompleteFrames() {
				fmt.Fprintf(bw, "%s: [%s] missing\n", frame, strings.Join(seq.Incomplete[frame], ", "))
			}
		} else if verbosity > 1 {
			fmt.Fprintln(bw, "Incomplete frame sets: none")
		}
		if verbosity > 0 {
			fmt.Fprintln(bw, "Complete frame sets:")
			fmt.Fprintln(bw, joinRanges(seq.Complete))
		}
	}
	return bw.Flush()
}

// WriteYAML renders the full report as YAML.
func WriteYAML(w io.Writer, r Report) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func joinRanges(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(FormatRanges(items), ", ")
}

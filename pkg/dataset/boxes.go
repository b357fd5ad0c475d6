package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/bft-labs/ycbvideo/internal/domain"
)

var boxPattern = regexp.MustCompile(`^([^ ]+) ([0-9.]+) ([0-9.]+) ([0-9.]+) ([0-9.]+)$`)

// FormatError reports a malformed line in a box file.
type FormatError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	msg := fmt.Sprintf("box file has invalid format: %s:%d: %q", e.Path, e.Line, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// ReadBoxFile reads the bounding boxes of a box file.
func ReadBoxFile(path string) ([]domain.Box, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	boxes, err := ParseBoxes(f)
	if err != nil {
		var ferr *FormatError
		if errors.As(err, &ferr) {
			ferr.Path = path
		}
		return nil, err
	}
	return boxes, nil
}

// ParseBoxes parses one "<label> <x1> <y1> <x2> <y2>" box per line.
func ParseBoxes(r io.Reader) ([]domain.Box, error) {
	boxes := []domain.Box{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		box, err := parseBox(text)
		if err != nil {
			return nil, &FormatError{Line: line, Text: text, Err: err}
		}
		boxes = append(boxes, box)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return boxes, nil
}

var errBoxLine = errors.New("want <label> <x1> <y1> <x2> <y2>")

func parseBox(text string) (domain.Box, error) {
	m := boxPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.Box{}, errBoxLine
	}

	var coords [4]float64
	for i := range coords {
		v, err := strconv.ParseFloat(m[i+2], 64)
		if err != nil {
			return domain.Box{}, err
		}
		coords[i] = v
	}
	return domain.Box{Label: m[1], X1: coords[0], Y1: coords[1], X2: coords[2], Y2: coords[3]}, nil
}

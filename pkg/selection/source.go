package selection

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadExpressions reads one expression per line. Surrounding whitespace is
// trimmed and blank lines are skipped; there is no comment syntax.
func ReadExpressions(r io.Reader) ([]string, error) {
	var expressions []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			expressions = append(expressions, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read expressions: %w", err)
	}
	return expressions, nil
}

// LoadExpressionFile reads the expressions stored in the file at path.
func LoadExpressionFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	expressions, err := ReadExpressions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return expressions, nil
}

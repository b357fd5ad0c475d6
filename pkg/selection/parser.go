package selection

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const elementPattern = `[0-9]{1,6}`

var (
	listPattern  = regexp.MustCompile(`^\[(` + elementPattern + `(?:,` + elementPattern + `)*)\]$`)
	rangePattern = regexp.MustCompile(`^(` + elementPattern + `)?:(` + elementPattern + `)?(?::([+-]?` + elementPattern + `)?)?$`)
)

// handler tries to parse one expression kind. It returns a nil Selector
// without error when the expression does not structurally match.
type handler func(expr string, axis Axis) (Selector, error)

// Handlers in priority order; the first structural match wins.
var (
	sequenceHandlers = []handler{parseSingle, parseList, parseAll, parseNamed, parseRange}
	frameHandlers    = []handler{parseSingle, parseList, parseAll, parseRange}
)

// Parse turns one "<sequence-part>/<frame-part>" expression into a
// FrameSelector.
func Parse(expression string) (FrameSelector, error) {
	fs, err := parse(expression)
	if err != nil {
		err.Index = -1
		return FrameSelector{}, err
	}
	return fs, nil
}

// ParseMany parses expressions in order and stops at the first failure.
// The returned ParseError records the failing expression and its index.
func ParseMany(expressions []string) ([]FrameSelector, error) {
	selectors := make([]FrameSelector, 0, len(expressions))
	for i, expr := range expressions {
		fs, err := parse(expr)
		if err != nil {
			err.Index = i
			return nil, err
		}
		selectors = append(selectors, fs)
	}
	return selectors, nil
}

func parse(expression string) (FrameSelector, *ParseError) {
	seqExpr, frameExpr, perr := split(expression)
	if perr != nil {
		return FrameSelector{}, perr
	}

	seq, perr := parsePart(expression, seqExpr, AxisSequence, sequenceHandlers)
	if perr != nil {
		return FrameSelector{}, perr
	}
	frame, perr := parsePart(expression, frameExpr, AxisFrame, frameHandlers)
	if perr != nil {
		return FrameSelector{}, perr
	}

	return FrameSelector{Expression: expression, Sequence: seq, Frame: frame}, nil
}

func split(expression string) (string, string, *ParseError) {
	switch n := strings.Count(expression, "/"); {
	case n == 0:
		return "", "", &ParseError{Expression: expression, Msg: "expression contains no '/'"}
	case n > 1:
		return "", "", &ParseError{Expression: expression, Msg: "expression must contain only one '/'"}
	}

	seqExpr, frameExpr, _ := strings.Cut(expression, "/")
	if seqExpr == "" {
		return "", "", &ParseError{Expression: expression, Msg: "no sequence expression given"}
	}
	if frameExpr == "" {
		return "", "", &ParseError{Expression: expression, Msg: "no frame expression given"}
	}
	return seqExpr, frameExpr, nil
}

func parsePart(expression, part string, axis Axis, handlers []handler) (Selector, *ParseError) {
	for _, h := range handlers {
		sel, err := h(part, axis)
		if err != nil {
			return nil, &ParseError{Expression: expression, Part: part, Err: err}
		}
		if sel != nil {
			return sel, nil
		}
	}
	return nil, &ParseError{
		Expression: expression,
		Part:       part,
		Msg:        fmt.Sprintf("invalid %s selection expression %q", axis, part),
	}
}

func parseSingle(expr string, axis Axis) (Selector, error) {
	if !IsNumeric(expr) || len(expr) > axis.Width() {
		return nil, nil
	}
	element, err := Normalize(expr, axis)
	if err != nil {
		return nil, err
	}
	return &Single{axis: axis, expr: expr, Element: element}, nil
}

func parseList(expr string, axis Axis) (Selector, error) {
	m := listPattern.FindStringSubmatch(expr)
	if m == nil {
		return nil, nil
	}
	tokens := strings.Split(m[1], ",")
	elements := make([]string, len(tokens))
	for i, tok := range tokens {
		element, err := Normalize(tok, axis)
		if err != nil {
			return nil, fmt.Errorf("list element at index %d: %w", i, err)
		}
		elements[i] = element
	}
	return &List{axis: axis, expr: expr, Elements: elements, Tokens: tokens}, nil
}

func parseAll(expr string, axis Axis) (Selector, error) {
	if expr != Star {
		return nil, nil
	}
	return &All{axis: axis}, nil
}

func parseNamed(expr string, axis Axis) (Selector, error) {
	if axis != AxisSequence {
		return nil, nil
	}
	if expr != Data && expr != DataSyn {
		return nil, nil
	}
	return &Named{Name: expr}, nil
}

func parseRange(expr string, axis Axis) (Selector, error) {
	m := rangePattern.FindStringSubmatch(expr)
	if m == nil {
		return nil, nil
	}
	start, err := NormalizeOptional(m[1], axis)
	if err != nil {
		return nil, fmt.Errorf("range start: %w", err)
	}
	stop, err := NormalizeOptional(m[2], axis)
	if err != nil {
		return nil, fmt.Errorf("range stop: %w", err)
	}
	step := 1
	if m[3] != "" {
		step, err = strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("range step %q: %w", m[3], err)
		}
	}

	r := &Range{axis: axis, expr: expr, Start: start, Stop: stop, Step: step}
	if err := r.check(); err != nil {
		return nil, err
	}
	return r, nil
}

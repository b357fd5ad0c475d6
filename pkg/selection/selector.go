package selection

import (
	"strconv"
	"strings"
)

// Selector is the structured form of one half of a selection expression.
// The set of implementations is closed: Single, List, All, Named and Range.
type Selector interface {
	// Axis returns the axis the selector was parsed for.
	Axis() Axis
	// Expression returns the text the selector was parsed from.
	Expression() string
	// String renders the selector in canonical (normalized) form.
	String() string

	selector()
}

// Single selects exactly one identifier.
type Single struct {
	axis    Axis
	expr    string
	Element string
}

// List selects identifiers in declared order. Duplicates are kept.
type List struct {
	axis     Axis
	expr     string
	Elements []string
	// Tokens holds the raw text of each element, as written.
	Tokens []string
}

// All selects every available identifier ("*").
type All struct {
	axis Axis
}

// Named selects the "data" or "data_syn" sequences.
type Named struct {
	Name string
}

// Range selects a slice of the available identifiers. Start and Stop are
// empty when open; Start is inclusive, Stop exclusive.
type Range struct {
	axis  Axis
	expr  string
	Start string
	Stop  string
	Step  int
}

// NewSingle returns a Single selector for an already normalized element.
func NewSingle(axis Axis, element string) *Single {
	return &Single{axis: axis, expr: element, Element: element}
}

// NewList returns a List selector for already normalized elements.
func NewList(axis Axis, elements ...string) *List {
	l := &List{axis: axis, Elements: elements, Tokens: elements}
	l.expr = l.String()
	return l
}

// NewAll returns the "*" selector.
func NewAll(axis Axis) *All { return &All{axis: axis} }

// NewRange returns a Range selector after checking the static consistency
// of its bounds. Bounds must already be normalized.
func NewRange(axis Axis, start, stop string, step int) (*Range, error) {
	r := &Range{axis: axis, Start: start, Stop: stop, Step: step}
	r.expr = r.String()
	if err := r.check(); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Single) Axis() Axis         { return s.axis }
func (s *Single) Expression() string { return s.expr }
func (s *Single) String() string     { return s.Element }
func (*Single) selector()            {}

func (l *List) Axis() Axis         { return l.axis }
func (l *List) Expression() string { return l.expr }
func (l *List) String() string     { return "[" + strings.Join(l.Elements, ",") + "]" }
func (*List) selector()            {}

func (a *All) Axis() Axis         { return a.axis }
func (a *All) Expression() string { return Star }
func (a *All) String() string     { return Star }
func (*All) selector()            {}

func (*Named) Axis() Axis           { return AxisSequence }
func (n *Named) Expression() string { return n.Name }
func (n *Named) String() string     { return n.Name }
func (*Named) selector()            {}

func (r *Range) Axis() Axis         { return r.axis }
func (r *Range) Expression() string { return r.expr }
func (*Range) selector()            {}

func (r *Range) String() string {
	s := r.Start + ":" + r.Stop
	if r.Step != 1 {
		s += ":" + strconv.Itoa(r.Step)
	}
	return s
}

// check rejects ranges whose bounds point against the step direction.
// start == stop is accepted here and fails later as an empty selection.
func (r *Range) check() error {
	if r.Step == 0 {
		return errorf(ErrInvalidRange, "step must not be 0")
	}
	if r.Start == "" || r.Stop == "" {
		return nil
	}
	start, _ := strconv.Atoi(r.Start)
	stop, _ := strconv.Atoi(r.Stop)
	if r.Step > 0 && start > stop {
		return errorf(ErrInvalidRange, "step > 0 requires start < stop")
	}
	if r.Step < 0 && start < stop {
		return errorf(ErrInvalidRange, "step < 0 requires start > stop")
	}
	return nil
}

// FrameSelector pairs the sequence and frame selectors of one expression.
type FrameSelector struct {
	Expression string
	Sequence   Selector
	Frame      Selector
}

// String renders the selector pair in canonical form.
func (f FrameSelector) String() string {
	return f.Sequence.String() + "/" + f.Frame.String()
}

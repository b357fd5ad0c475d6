package selection

import (
	"fmt"
	"slices"
)

// Evaluate returns the ordered subset of available that satisfies sel.
// available must be sorted ascending; it is never modified.
func Evaluate(sel Selector, available []string) ([]string, error) {
	if len(available) == 0 {
		return nil, ErrNoElements
	}

	switch s := sel.(type) {
	case *Single:
		return evalSingle(s, available)
	case *List:
		return evalList(s, available)
	case *All:
		return slices.Clone(available), nil
	case *Named:
		return evalNamed(s, available)
	case *Range:
		return evalRange(s, available)
	default:
		panic(fmt.Sprintf("selection: unknown selector %T", sel))
	}
}

func evalSingle(s *Single, available []string) ([]string, error) {
	if !slices.Contains(available, s.Element) {
		return nil, &MissingElementError{
			Axis:       s.axis,
			Role:       RoleSingle,
			Element:    s.Element,
			Token:      s.expr,
			Index:      -1,
			Expression: s.expr,
			Available:  available,
		}
	}
	return []string{s.Element}, nil
}

func evalList(l *List, available []string) ([]string, error) {
	for i, element := range l.Elements {
		if !slices.Contains(available, element) {
			return nil, &MissingElementError{
				Axis:       l.axis,
				Role:       RoleListElement,
				Element:    element,
				Token:      l.Tokens[i],
				Index:      i,
				Expression: l.expr,
				Available:  available,
			}
		}
	}
	return slices.Clone(l.Elements), nil
}

func evalNamed(n *Named, available []string) ([]string, error) {
	if n.Name == DataSyn {
		if !slices.Contains(available, DataSyn) {
			return nil, &MissingElementError{
				Axis:       AxisSequence,
				Role:       RoleNamed,
				Element:    DataSyn,
				Token:      DataSyn,
				Index:      -1,
				Expression: n.Name,
				Available:  available,
			}
		}
		return []string{DataSyn}, nil
	}

	out := make([]string, 0, len(available))
	for _, id := range available {
		if id != DataSyn {
			out = append(out, id)
		}
	}
	return out, nil
}

func evalRange(r *Range, available []string) ([]string, error) {
	elements := available
	if r.axis == AxisSequence {
		// data_syn never takes part in a range.
		elements = make([]string, 0, len(available))
		for _, id := range available {
			if IsNumeric(id) {
				elements = append(elements, id)
			}
		}
	}

	start, err := r.position(elements, r.Start, RoleRangeStart)
	if err != nil {
		return nil, err
	}
	stop, err := r.position(elements, r.Stop, RoleRangeStop)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, i := range sliceIndices(len(elements), start, stop, r.Step) {
		out = append(out, elements[i])
	}
	if len(out) == 0 {
		return nil, &EmptySelectionError{Axis: r.axis, Expression: r.expr, Available: elements}
	}
	return out, nil
}

// position looks a bound up by value. It returns -1 for an open bound.
func (r *Range) position(elements []string, bound string, role Role) (int, error) {
	if bound == "" {
		return -1, nil
	}
	i := slices.Index(elements, bound)
	if i < 0 {
		return 0, &MissingElementError{
			Axis:       r.axis,
			Role:       role,
			Element:    bound,
			Token:      bound,
			Index:      -1,
			Expression: r.expr,
			Available:  elements,
		}
	}
	return i, nil
}

// sliceIndices expands a half-open, step-aware slice over n elements.
// start and stop are valid positions or -1 for an open bound.
func sliceIndices(n, start, stop, step int) []int {
	var idx []int
	if step > 0 {
		if start < 0 {
			start = 0
		}
		if stop < 0 {
			stop = n
		}
		for i := start; i < stop; i += step {
			idx = append(idx, i)
		}
		return idx
	}

	if start < 0 {
		start = n - 1
	}
	// An open stop runs past the first element.
	for i := start; i >= 0 && (stop < 0 || i > stop); i += step {
		idx = append(idx, i)
	}
	return idx
}

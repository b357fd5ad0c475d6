package selection

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrParse classifies every error produced while parsing expressions.
	ErrParse = errors.New("selection: invalid expression")

	// ErrInvalidRange is wrapped by a ParseError when the range bounds can
	// never be traversed with the given step.
	ErrInvalidRange = errors.New("selection: invalid range")

	// ErrNoElements is returned when a selector is evaluated against an
	// empty inventory.
	ErrNoElements = errors.New("selection: no elements to select from")
)

// InvalidIdentifierError reports a token that cannot be normalized.
type InvalidIdentifierError struct {
	Token  string
	Axis   Axis
	Reason string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid %s identifier %q: %s", e.Axis, e.Token, e.Reason)
}

// ParseError reports a malformed selection expression. Index is the position
// of the expression within a batch, or -1 for a standalone parse.
type ParseError struct {
	Expression string
	Part       string
	Index      int
	Msg        string
	Err        error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("invalid selection expression ")
	fmt.Fprintf(&b, "%q", e.Expression)
	if e.Index >= 0 {
		fmt.Fprintf(&b, " at index %d", e.Index)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Role says which part of a selector referenced a missing element.
type Role uint8

const (
	RoleSingle Role = iota + 1
	RoleListElement
	RoleNamed
	RoleRangeStart
	RoleRangeStop
)

func (r Role) String() string {
	switch r {
	case RoleSingle:
		return "single element"
	case RoleListElement:
		return "list element"
	case RoleNamed:
		return "named sequence"
	case RoleRangeStart:
		return "range start"
	case RoleRangeStop:
		return "range stop"
	default:
		return "element"
	}
}

// MissingElementError reports an identifier that is absent from the
// inventory it was evaluated against. Index and Token are only meaningful
// for list elements.
type MissingElementError struct {
	Axis       Axis
	Role       Role
	Element    string
	Token      string
	Index      int
	Expression string
	Available  []string
}

func (e *MissingElementError) Error() string {
	if e.Role == RoleListElement {
		return fmt.Sprintf("%s missing: %s %s at index %d", e.Role, e.Axis, e.Token, e.Index)
	}
	return fmt.Sprintf("%s missing: %s %s (expression %q)", e.Role, e.Axis, e.Element, e.Expression)
}

// EmptySelectionError reports a well-formed range that selects nothing.
type EmptySelectionError struct {
	Axis       Axis
	Expression string
	Available  []string
}

func (e *EmptySelectionError) Error() string {
	return fmt.Sprintf("no %ss selected: %s", e.Axis, e.Expression)
}

// errorf formats a message and wraps base.
func errorf(base error, format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, base)...)
}

package selection

import (
	"fmt"
	"strings"
)

// Axis identifies which half of a selection expression a token belongs to.
type Axis uint8

const (
	// AxisSequence selects frame sequences (4-digit identifiers).
	AxisSequence Axis = iota + 1
	// AxisFrame selects frames within a sequence (6-digit identifiers).
	AxisFrame
)

// Reserved identifier literals.
const (
	Star    = "*"
	Data    = "data"
	DataSyn = "data_syn"
)

const (
	sequenceWidth = 4
	frameWidth    = 6
)

// Width returns the canonical identifier width for the axis.
func (a Axis) Width() int {
	if a == AxisSequence {
		return sequenceWidth
	}
	return frameWidth
}

func (a Axis) String() string {
	switch a {
	case AxisSequence:
		return "sequence"
	case AxisFrame:
		return "frame"
	default:
		return fmt.Sprintf("axis(%d)", uint8(a))
	}
}

// Normalize canonicalizes a raw token into a fixed-width identifier for the
// given axis. Digit tokens are zero-padded; reserved literals pass through
// unchanged where the axis permits them.
func Normalize(token string, axis Axis) (string, error) {
	switch token {
	case Star:
		return token, nil
	case Data, DataSyn:
		if axis == AxisSequence {
			return token, nil
		}
		return "", &InvalidIdentifierError{Token: token, Axis: axis, Reason: "reserved for sequences"}
	}

	if token == "" || !isDigits(token) {
		return "", &InvalidIdentifierError{Token: token, Axis: axis, Reason: "not a number"}
	}
	width := axis.Width()
	if len(token) > width {
		return "", &InvalidIdentifierError{
			Token:  token,
			Axis:   axis,
			Reason: fmt.Sprintf("more than %d digits", width),
		}
	}
	return strings.Repeat("0", width-len(token)) + token, nil
}

// NormalizeOptional is Normalize for optional tokens: the empty token means
// "absent" and is returned as is.
func NormalizeOptional(token string, axis Axis) (string, error) {
	if token == "" {
		return "", nil
	}
	return Normalize(token, axis)
}

// IsNumeric reports whether id consists only of ASCII digits.
func IsNumeric(id string) bool {
	return id != "" && isDigits(id)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package info

import (
	"strconv"

	"github.com/bft-labs/ycbvideo/pkg/selection"
)

// FormatRanges folds runs of consecutive numeric identifiers into
// "first - last". Non-numeric identifiers such as data_syn always stand
// alone.
func FormatRanges(items []string) []string {
	out := []string{}
	start := 0
	for i := 1; i <= len(items); i++ {
		if i < len(items) && consecutive(items[i-1], items[i]) {
			continue
		}
		if i-start == 1 {
			out = append(out, items[start])
		} else {
			out = append(out, items[start]+" - "+items[i-1])
		}
		start = i
	}
	return out
}

func consecutive(a, b string) bool {
	if !selection.IsNumeric(a) || !selection.IsNumeric(b) {
		return false
	}
	x, errA := strconv.Atoi(a)
	y, errB := strconv.Atoi(b)
	return errA == nil && errB == nil && y == x+1
}

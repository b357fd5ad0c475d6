// Package selection implements the frame selection-expression language.
//
// An expression has the form "<sequence-part>/<frame-part>". Each part is
// one of:
//
//	42          a single element (up to 4 digits for sequences, 6 for frames)
//	[1,2,5]     a list of elements, kept in the given order
//	*           every available element
//	data        every numbered sequence (sequence part only)
//	data_syn    the synthetic sequence (sequence part only)
//	10:20:2     a range, start inclusive, stop exclusive, optional step
//
// Range bounds may be omitted (":" selects everything) and the step may be
// negative, which reverses the order: "1/::-2" selects every other frame of
// sequence 0001, last frame first.
//
// # Usage
//
//	sel, err := selection.Parse("[1,2]/10:20")
//	if err != nil {
//	    return err
//	}
//	sequences, err := selection.Evaluate(sel.Sequence, available)
//
// Parsing checks syntax, identifier widths and the direction of range
// bounds. Evaluation checks the selected identifiers against an inventory
// and reports missing elements and empty ranges.
package selection

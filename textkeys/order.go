package textkeys

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation returns an order on strings following the collation rules for
// language tag, e.g. sorting "Äpfel" next to "Apfel" for German. Options such
// as collate.IgnoreCase make more strings equivalent.
//
// The returned function is not safe for concurrent use, just like the maps it
// is meant for.
func Collation(tag language.Tag, opts ...collate.Option) func(a, b string) bool {
	c := collate.New(tag, opts...)
	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}

// FoldOrder returns an order on strings by their Unicode case folding, making
// "Go", "GO" and "go" equivalent keys. The returned function reuses a single
// caser and is not safe for concurrent use.
func FoldOrder() func(a, b string) bool {
	fold := cases.Fold()
	return func(a, b string) bool {
		return fold.String(a) < fold.String(b)
	}
}

// FoldLess is the order of FoldOrder, safe for concurrent use. It creates a
// caser on every call; maps should prefer FoldOrder.
func FoldLess(a, b string) bool {
	fold := cases.Fold()
	return fold.String(a) < fold.String(b)
}

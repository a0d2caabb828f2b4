// Package quotes holds the fixed list of quotes shown under the countdown and
// the rotator that cycles through them.
package quotes

import "errors"

// ErrNoQuotes is returned when a rotator or quote file has no entries.
var ErrNoQuotes = errors.New("quotes: list is empty")

// Quote is a single quotation and its attribution.
type Quote struct {
	Text   string `toml:"text" yaml:"text"`
	Author string `toml:"author" yaml:"author"`
}

// Builtin returns the default quote list.
func Builtin() []Quote {
	return []Quote{
		{
			Text:   "A lesson without pain is meaningless.",
			Author: "Fullmetal Alchemist: Brotherhood",
		},
		{
			Text:   "Power comes in response to a need, not a desire.",
			Author: "Dragon Ball Z",
		},
		{
			Text:   "Fear is not evil. It tells you what your weakness is.",
			Author: "Fairy Tail",
		},
	}
}

// Rotator cycles through an immutable quote list. The index always stays
// within [0, Len()).
type Rotator struct {
	quotes []Quote
	index  int
}

// NewRotator copies list and positions the rotator at start. start may be
// any integer; it is reduced modulo the list length.
func NewRotator(list []Quote, start int) (*Rotator, error) {
	if len(list) == 0 {
		return nil, ErrNoQuotes
	}
	qs := make([]Quote, len(list))
	copy(qs, list)
	return &Rotator{quotes: qs, index: mod(start, len(qs))}, nil
}

// Current returns the quote at the current index.
func (r *Rotator) Current() Quote {
	return r.quotes[r.index]
}

// Index returns the current index.
func (r *Rotator) Index() int {
	return r.index
}

// Len returns the number of quotes.
func (r *Rotator) Len() int {
	return len(r.quotes)
}

// Advance moves to the next quote, wrapping after the last one.
func (r *Rotator) Advance() Quote {
	return r.AdvanceBy(1)
}

// Previous moves to the previous quote, wrapping before the first one.
func (r *Rotator) Previous() Quote {
	return r.AdvanceBy(-1)
}

// AdvanceBy moves n positions; n may be negative.
func (r *Rotator) AdvanceBy(n int) Quote {
	r.index = mod(r.index+n, len(r.quotes))
	return r.Current()
}

// mod is the non-negative remainder of a divided by n.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

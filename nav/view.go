package nav

import "fmt"

// MaxDots caps the slide indicator row. Decks with more slides only get
// dots for the first MaxDots.
const MaxDots = 10

// Dot is one slide indicator.
type Dot struct {
	Index  int
	Active bool
}

// View is a render-ready snapshot of the navigation state.
type View struct {
	Active      bool
	Index       int
	Count       int
	Counter     string
	PrevEnabled bool
	NextEnabled bool
	Dots        []Dot
	Fragment    string
}

// View returns the current snapshot.
func (n *Navigator) View() View {
	count := n.Count()
	v := View{
		Active: n.active,
		Index:  n.current,
		Count:  count,
	}
	if count == 0 {
		v.Counter = "0 of 0"
		return v
	}

	v.Counter = fmt.Sprintf("%d of %d", n.current+1, count)
	v.PrevEnabled = n.current > 0
	v.NextEnabled = n.current < count-1
	v.Fragment = FormatFragment(n.current)

	dots := count
	if dots > MaxDots {
		dots = MaxDots
	}
	v.Dots = make([]Dot, dots)
	for i := range v.Dots {
		v.Dots[i] = Dot{Index: i, Active: i == n.current}
	}
	return v
}

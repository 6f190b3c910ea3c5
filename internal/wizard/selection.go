package wizard

import "sort"

// Selection is a cursor plus a set of chosen indices over a fixed-length list.
// Movement wraps around; every operation is a no-op on an empty list.
type Selection struct {
	n      int
	cursor int
	chosen map[int]struct{}
}

// NewSelection returns an empty selection over n items with the cursor on the first.
func NewSelection(n int) Selection {
	return Selection{n: max(n, 0), chosen: map[int]struct{}{}}
}

func (s *Selection) Len() int    { return s.n }
func (s *Selection) Cursor() int { return s.cursor }

func (s *Selection) Down() {
	if s.n == 0 {
		return
	}
	s.cursor = (s.cursor + 1) % s.n
}

func (s *Selection) Up() {
	if s.n == 0 {
		return
	}
	s.cursor = (s.cursor + s.n - 1) % s.n
}

// Toggle flips whether the item under the cursor is chosen.
func (s *Selection) Toggle() {
	if s.n == 0 {
		return
	}
	if _, ok := s.chosen[s.cursor]; ok {
		delete(s.chosen, s.cursor)
		return
	}
	s.chosen[s.cursor] = struct{}{}
}

func (s *Selection) IsChosen(i int) bool {
	_, ok := s.chosen[i]
	return ok
}

func (s *Selection) Count() int { return len(s.chosen) }

// Chosen returns the chosen indices in ascending order.
func (s *Selection) Chosen() []int {
	out := make([]int, 0, len(s.chosen))
	for i := range s.chosen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

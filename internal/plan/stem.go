package plan

import "strconv"

// Stem generates fallback identifiers from a stem when the stem
// itself is taken: User2, User3 and so on.
type Stem struct {
	taken map[string]struct{}
	stem  string
	last  int
}

// NewStem creates a generator over the namespace. The namespace map is
// shared, not copied: names handed out by Next are claimed in it. A
// nil namespace treats every name as free.
func NewStem(stem string, namespace map[string]struct{}) *Stem {
	return &Stem{taken: namespace, stem: stem, last: 1}
}

// Next returns the next free name from the stem and claims it.
func (s *Stem) Next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		s.last++

		name := s.stem + strconv.Itoa(s.last)
		if _, ok := s.taken[name]; ok {
			continue
		}

		s.taken[name] = struct{}{}

		return name
	}
}

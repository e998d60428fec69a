package advisor

// CodeSet is a set of normalized course codes.
type CodeSet map[string]struct{}

// NewCodeSet builds a set from the given codes.
func NewCodeSet(codes ...string) CodeSet {
	s := make(CodeSet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

func (s CodeSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

func (s CodeSet) Add(codes ...string) {
	for _, c := range codes {
		s[c] = struct{}{}
	}
}

// Union returns a new set containing the members of both sets.
func (s CodeSet) Union(other CodeSet) CodeSet {
	out := make(CodeSet, len(s)+len(other))
	for c := range s {
		out[c] = struct{}{}
	}
	for c := range other {
		out[c] = struct{}{}
	}
	return out
}

package match

import "strings"

// set is a case-insensitive string set. Every scorer that does
// multi-value matching goes through this one helper so normalization
// rules stay in one place.
type set map[string]struct{}

// norm lowercases and trims a value for comparison.
func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// newSet builds a set from one or more string slices, skipping empty
// values after normalization.
func newSet(slices ...[]string) set {
	s := make(set)
	for _, sl := range slices {
		for _, v := range sl {
			if n := norm(v); n != "" {
				s[n] = struct{}{}
			}
		}
	}
	return s
}

func (s set) has(v string) bool {
	_, ok := s[norm(v)]
	return ok
}

func (s set) empty() bool {
	return len(s) == 0
}

// intersects reports whether the two sets share any member.
func (s set) intersects(other set) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for v := range small {
		if _, ok := large[v]; ok {
			return true
		}
	}
	return false
}

// containsAll reports whether s includes every value in values.
func (s set) containsAll(values []string) bool {
	for _, v := range values {
		if !s.has(v) {
			return false
		}
	}
	return true
}

// equalFold compares two values case-insensitively after trimming.
func equalFold(a, b string) bool {
	return norm(a) == norm(b)
}

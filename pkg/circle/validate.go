package circle

// FirstAndLastGroupsDiffer reports whether the wrap-around edge is valid:
// the last participant gives to the first, so they cannot share a group.
func FirstAndLastGroupsDiffer(seq []Participant) bool {
	if len(seq) == 0 {
		return false
	}
	return seq[0].Group != seq[len(seq)-1].Group
}

// NoConsecutiveGroups reports whether no participant shares a group with the
// participant immediately before it.
func NoConsecutiveGroups(seq []Participant) bool {
	prev := NoGroup
	for _, p := range seq {
		if p.Group == prev {
			return false
		}
		prev = p.Group
	}
	return true
}

// IsValidCycle reports whether seq is an acceptable grouped gift circle.
// An empty sequence is never valid. IsValidCycle does not modify seq.
func IsValidCycle(seq []Participant) bool {
	return FirstAndLastGroupsDiffer(seq) && NoConsecutiveGroups(seq)
}

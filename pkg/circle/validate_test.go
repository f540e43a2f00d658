package circle

import "testing"

func TestFirstAndLastGroupsDiffer(t *testing.T) {
	tests := []struct {
		name string
		seq  []Participant
		want bool
	}{
		{
			name: "different",
			seq:  []Participant{New("Father", 1), New("Mother", 2), New("Son", 1), New("Daughter", 3)},
			want: true,
		},
		{
			name: "same",
			seq:  []Participant{New("Father", 1), New("Mother", 2), New("Son", 1)},
			want: false,
		},
		{
			name: "empty",
			seq:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstAndLastGroupsDiffer(tt.seq); got != tt.want {
				t.Errorf("FirstAndLastGroupsDiffer() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNoConsecutiveGroups(t *testing.T) {
	tests := []struct {
		name string
		seq  []Participant
		want bool
	}{
		{
			name: "alternating",
			seq:  []Participant{New("Father", 1), New("Mother", 2), New("Son", 1), New("Daughter", 3)},
			want: true,
		},
		{
			name: "adjacent pair",
			seq:  []Participant{New("Father", 1), New("Mother", 2), New("Son", 2), New("Daughter", 3)},
			want: false,
		},
		{
			name: "group zero is a real group",
			seq:  []Participant{New("Father", 0), New("Mother", 1), New("Son", 0)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoConsecutiveGroups(tt.seq); got != tt.want {
				t.Errorf("NoConsecutiveGroups() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsValidCycle(t *testing.T) {
	valid := []Participant{New("Father", 1), New("Mother", 2), New("Son", 1), New("Daughter", 3)}
	if !IsValidCycle(valid) {
		t.Error("IsValidCycle() = false for a valid cycle")
	}

	wrap := []Participant{New("Father", 1), New("Mother", 2), New("Son", 3), New("Daughter", 1)}
	if IsValidCycle(wrap) {
		t.Error("IsValidCycle() = true when first and last share a group")
	}

	if IsValidCycle(nil) {
		t.Error("IsValidCycle(nil) = true")
	}
}

func TestIsValidCycleIsPure(t *testing.T) {
	seq := []Participant{New("Father", 1), New("Mother", 2), New("Son", 1), New("Daughter", 3)}
	before := append([]Participant(nil), seq...)

	first, second := IsValidCycle(seq), IsValidCycle(seq)
	if first != second {
		t.Errorf("IsValidCycle() not idempotent: %v then %v", first, second)
	}
	for i := range seq {
		if seq[i] != before[i] {
			t.Fatalf("IsValidCycle() modified position %d: %+v -> %+v", i, before[i], seq[i])
		}
	}
}

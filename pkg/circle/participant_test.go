package circle

import (
	"encoding/json"
	"testing"
)

func TestParticipantZeroValueGroup(t *testing.T) {
	literal := Participant{Name: "Father"}
	if !literal.HasGroup() || literal.Group != 0 {
		t.Errorf("literal participant group = %v, want real group 0", literal.Group)
	}
	if NewNoGroup("Guest").HasGroup() {
		t.Error("NewNoGroup() participant should have no group")
	}

	// A literal without a group collides with group 0 members.
	people := []Participant{literal, New("Mother", 0)}
	if CountGroups(people)[0] != 2 {
		t.Errorf("CountGroups() = %v, want both in group 0", CountGroups(people))
	}
}

func TestGroupIDUnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    GroupID
		wantErr bool
	}{
		{"null", NoGroup, false},
		{"0", 0, false},
		{"42", 42, false},
		{"-1", 0, true},
		{`"3"`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var g GroupID
			err := json.Unmarshal([]byte(tt.in), &g)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && g != tt.want {
				t.Errorf("Unmarshal(%s) = %v, want %v", tt.in, g, tt.want)
			}
		})
	}
}

package circle

import (
	"fmt"
	"strconv"
)

// GroupID identifies the group a participant belongs to.
// Real groups are non-negative; [NoGroup] marks an absent group.
type GroupID int

// NoGroup is the sentinel group. It never collides with a real group and
// seeds every "previous group" scan.
const NoGroup GroupID = -1

// Valid reports whether g is a real (non-negative) group.
func (g GroupID) Valid() bool { return g >= 0 }

// String returns the decimal group number, or the empty string for [NoGroup].
func (g GroupID) String() string {
	if !g.Valid() {
		return ""
	}
	return strconv.Itoa(int(g))
}

// MarshalJSON encodes NoGroup as null and real groups as numbers.
func (g GroupID) MarshalJSON() ([]byte, error) {
	if !g.Valid() {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(g), 10), nil
}

// UnmarshalJSON decodes null as NoGroup. Negative numbers are rejected.
func (g *GroupID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*g = NoGroup
		return nil
	}
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("group number %s: %w", data, err)
	}
	if n < 0 {
		return fmt.Errorf("group number %d must not be negative", n)
	}
	*g = GroupID(n)
	return nil
}

// MarshalYAML encodes NoGroup as null.
func (g GroupID) MarshalYAML() (any, error) {
	if !g.Valid() {
		return nil, nil
	}
	return int(g), nil
}

// Participant is one person taking part in a draw.
//
// Participants are plain comparable values. Build them with [New] or
// [NewNoGroup]: the zero Group is 0, a real group, so a literal such as
// Participant{Name: "x"} belongs to group 0 rather than to NoGroup.
type Participant struct {
	// Name is the unique display name.
	Name string `json:"name" yaml:"name"`

	// Email is carried through untouched for downstream notification.
	Email string `json:"email_address,omitempty" yaml:"email_address,omitempty"`

	// Group is the participant's group, or NoGroup.
	Group GroupID `json:"group_number" yaml:"group_number"`

	// Recipient is the name of the person this participant gives to.
	// It is empty until a circle has been accepted.
	Recipient string `json:"assigned_person_name,omitempty" yaml:"assigned_person_name,omitempty"`
}

// New returns a participant that belongs to group.
func New(name string, group GroupID) Participant {
	return Participant{Name: name, Group: group}
}

// NewNoGroup returns a participant without a group.
func NewNoGroup(name string) Participant {
	return Participant{Name: name, Group: NoGroup}
}

// HasGroup reports whether the participant has a group assigned.
func (p Participant) HasGroup() bool { return p.Group.Valid() }

// Pair is one giver/recipient assignment.
type Pair struct {
	Giver     string `json:"giver" yaml:"giver"`
	Recipient string `json:"recipient" yaml:"recipient"`
}

// AssignRecipients sets every participant's Recipient to the name of the
// participant that follows it, wrapping the last one around to the first.
// It modifies people in place.
func AssignRecipients(people []Participant) {
	n := len(people)
	for i := range people {
		people[i].Recipient = people[(i+1)%n].Name
	}
}

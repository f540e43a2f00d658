// Package io reads participant lists and writes accepted gift circles.
//
// # Record Format
//
// Input is CSV with a header row. Column names are case-insensitive and may
// appear in any order:
//
//	name,email_address,group_number
//	Father,father@example.com,1
//	Mother,,1
//	Son,,2
//	Daughter,,2
//
// Required:
//   - name: unique display name
//
// Optional:
//   - email_address: carried through to the output untouched
//   - group_number: integer in [0, 65535]; an empty cell means no group
//   - assigned_person_name: ignored on input, so output can be fed back in
//
// Leading and trailing whitespace is trimmed from every cell. Each record
// is validated before it becomes a [circle.Participant]; errors name the
// line they came from.
//
// JSON input is an array of the same records:
//
//	[{"name": "Father", "group_number": 1}, {"name": "Son"}]
//
// [ReadJSON] also accepts a document written by [WriteJSON], so a previous
// draw can be fed back in.
//
// # Output Formats
//
// [WriteCSV] mirrors the input format with assigned_person_name filled in.
// [WriteJSON] and [WriteYAML] write a document with the draw metadata:
//
//	{
//	  "attempts": 3,
//	  "use_groups": true,
//	  "seed": 1234,
//	  "participants": [...]
//	}
//
// [WriteChain] prints the cycle on one line: "A → B → C → A".
// [WritePairs] prints one "Giver → Recipient" line per participant.
//
// [Write] dispatches on a [Format].
package io

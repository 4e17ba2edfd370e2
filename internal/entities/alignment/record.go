package alignment

import (
	"fmt"
	"strings"
)

// Record is everything stored for one character: the current position and
// the full history, oldest entry first. The JSON names are the persisted
// field names.
type Record struct {
	Values  Value    `json:"alignmentValues"`
	History []string `json:"history"`
}

// NewRecord returns an empty record positioned at v.
func NewRecord(v Value) Record {
	return Record{Values: v.Clamped(), History: []string{}}
}

// Clone returns a deep copy so callers can't alias the history slice.
func (r Record) Clone() Record {
	history := make([]string, len(r.History))
	copy(history, r.History)
	return Record{Values: r.Values, History: history}
}

// ApplyDelta shifts the record by the given deltas and appends one history
// entry describing the change. It reports false and returns r unchanged when
// info is blank and both deltas are zero. r itself is never modified.
func ApplyDelta(r Record, lawDelta, moralDelta int, info string) (Record, string, bool) {
	info = strings.TrimSpace(info)
	if info == "" && lawDelta == 0 && moralDelta == 0 {
		return r, "", false
	}

	entry := info
	if summary := FormatDelta(lawDelta, moralDelta); summary != "" {
		if entry == "" {
			entry = summary
		} else {
			entry += " " + summary
		}
	}

	next := r.Clone()
	next.Values = Value{
		Law:   Shift(r.Values.Law, lawDelta),
		Moral: Shift(r.Values.Moral, moralDelta),
	}
	next.History = append(next.History, entry)

	return next, entry, true
}

// FormatDelta renders the parenthesised change summary, e.g.
// "(+3 laws, -2 morals)". It returns "" when both deltas are zero.
func FormatDelta(lawDelta, moralDelta int) string {
	var clauses []string
	if lawDelta != 0 {
		clauses = append(clauses, signed(lawDelta, "law"))
	}
	if moralDelta != 0 {
		clauses = append(clauses, signed(moralDelta, "moral"))
	}
	if len(clauses) == 0 {
		return ""
	}
	return "(" + strings.Join(clauses, ", ") + ")"
}

func signed(delta int, noun string) string {
	if delta != 1 && delta != -1 {
		noun += "s"
	}
	return fmt.Sprintf("%+d %s", delta, noun)
}

// Package progress tracks challenge progress for one client session: the server-synced
// per-category stats, the session-local set of mastered questions, and the rules that turn
// both into display percentages, summaries and badges.
package progress

import (
	"encoding/json"
	"math"
)

// CategoryStats is one category's progress as reported by the server.
//
// The server has emitted two shapes over time, {attempts, correct} and {percent}, and has
// occasionally put a percent into the correct field. Fields that are absent or not JSON
// numbers are left nil.
type CategoryStats struct {
	Attempts *float64 `json:"attempts,omitempty"`
	Correct  *float64 `json:"correct,omitempty"`
	Percent  *float64 `json:"percent,omitempty"`
}

// Counts builds stats in the attempts/correct shape.
func Counts(attempts, correct int) *CategoryStats {
	a, c := float64(attempts), float64(correct)
	return &CategoryStats{Attempts: &a, Correct: &c}
}

// Percent builds stats in the pre-computed percent shape.
func Percent(p float64) *CategoryStats {
	return &CategoryStats{Percent: &p}
}

// UnmarshalJSON decodes whatever the server sent. It never fails: a payload that is not an
// object, or fields that are not numbers, produce empty stats.
func (s *CategoryStats) UnmarshalJSON(data []byte) error {
	*s = CategoryStats{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	s.Attempts = numberField(fields["attempts"])
	s.Correct = numberField(fields["correct"])
	s.Percent = numberField(fields["percent"])
	return nil
}

func numberField(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return &f
}

// CorrectCount returns the correct field, or zero when absent.
func (s *CategoryStats) CorrectCount() float64 {
	if s == nil || s.Correct == nil {
		return 0
	}
	return *s.Correct
}

// Table maps category IDs to their stats. A nil entry means no stats for that category.
type Table map[string]*CategoryStats

// UnmarshalJSON requires an object at the top level; individual entries are decoded
// leniently and JSON nulls are dropped.
func (t *Table) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Table, len(raw))
	for id, entry := range raw {
		if string(entry) == "null" {
			continue
		}
		stats := &CategoryStats{}
		_ = stats.UnmarshalJSON(entry)
		out[id] = stats
	}
	*t = out
	return nil
}

// NormalizePercent resolves stats of any known shape to a display percent in [0, 100].
//
// Precedence: a numeric percent field wins; otherwise attempts/correct is used when
// attempts is positive, where a correct value larger than attempts is read as a percent;
// anything else is 0.
func NormalizePercent(stats *CategoryStats) int {
	if stats == nil {
		return 0
	}
	if stats.Percent != nil {
		return clampPercent(roundHalfUp(*stats.Percent))
	}
	if stats.Attempts != nil && *stats.Attempts > 0 && stats.Correct != nil {
		attempts, correct := *stats.Attempts, *stats.Correct
		if correct > attempts {
			return clampPercent(roundHalfUp(correct))
		}
		return clampPercent(roundHalfUp(correct / attempts * 100))
	}
	return 0
}

// roundHalfUp rounds to the nearest integer with halves going toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clampPercent(v float64) int {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}

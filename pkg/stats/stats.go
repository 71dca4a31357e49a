package stats

import (
	"fmt"
	"strings"
)

// The five tracked personal-development stats.
const (
	Knowledge = "Knowledge"
	Charm     = "Charm"
	Guts      = "Guts"
	Health    = "Health"
	Kindness  = "Kindness"
)

// Names lists the stats in display order.
var Names = []string{Knowledge, Charm, Guts, Health, Kindness}

// Record maps each of the five stat names to a non-negative point total.
// All five keys are always present.
type Record map[string]int

// NewRecord returns a record with every stat at zero.
func NewRecord() Record {
	r := make(Record, len(Names))
	for _, name := range Names {
		r[name] = 0
	}
	return r
}

// Known reports whether name is one of the five tracked stats.
func Known(name string) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Apply adds each delta to the corresponding stat. Unknown names are ignored.
func (r Record) Apply(deltas map[string]int) {
	for name, points := range deltas {
		if Known(name) {
			r[name] += points
		}
	}
}

// Total returns the sum of all five stat values.
func (r Record) Total() int {
	total := 0
	for _, name := range Names {
		total += r[name]
	}
	return total
}

// normalize enforces the record invariants: all five keys present,
// no negative values, no unknown keys.
func (r Record) normalize() Record {
	out := make(Record, len(Names))
	for _, name := range Names {
		v := r[name]
		if v < 0 {
			v = 0
		}
		out[name] = v
	}
	return out
}

// ==========================================
// RANK TIERS
// ==========================================

// Rank represents a named tier a stat value falls into.
type Rank struct {
	Name      string
	MinPoints int
	MaxPoints int
}

// Ranks defines the tiers, lowest first.
var Ranks = []Rank{
	{Name: "Novice", MinPoints: 0, MaxPoints: 9},
	{Name: "Apprentice", MinPoints: 10, MaxPoints: 24},
	{Name: "Adept", MinPoints: 25, MaxPoints: 49},
	{Name: "Expert", MinPoints: 50, MaxPoints: 99},
	{Name: "Master", MinPoints: 100, MaxPoints: 1<<31 - 1},
}

// RankFor returns the tier for a given stat value.
func RankFor(points int) Rank {
	for _, rank := range Ranks {
		if points >= rank.MinPoints && points <= rank.MaxPoints {
			return rank
		}
	}
	return Ranks[0]
}

// Bar renders a 10-cell progress bar showing advancement through the
// current rank. The top rank renders full.
func Bar(points int) string {
	rank := RankFor(points)

	const barLength = 10
	filled := barLength
	if rank.MaxPoints < 1<<31-1 {
		rankRange := rank.MaxPoints - rank.MinPoints + 1
		progress := points - rank.MinPoints
		filled = progress * barLength / rankRange
	}
	if filled > barLength {
		filled = barLength
	}
	if filled < 0 {
		filled = 0
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", barLength-filled)
}

// FormatRecord renders the record as a plain multi-line display block.
func FormatRecord(r Record) string {
	var b strings.Builder
	b.WriteString("--- Current Stats ---\n")
	for _, name := range Names {
		points := r[name]
		rank := RankFor(points)
		fmt.Fprintf(&b, "%-10s %s %4d  (%s)\n", name, Bar(points), points, rank.Name)
	}
	b.WriteString("---------------------")
	return b.String()
}

package evaluator

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"lifesim/pkg/stats"
)

// Prompt is the fixed instruction sent ahead of the user's daily log.
const Prompt = `You are an AI stat evaluator for a text-based life sim app.
The app tracks five stats: Knowledge, Charm, Guts, Health, Kindness.

Based on the user's daily log, identify the **two stats** that were most developed.
Award each of those two stats a point value based on the effort level:
- 3 points: Outstanding / Expert-level effort
- 2 points: Solid / Average-level effort
- 1 point: Beginner / Basic effort

Your output must strictly follow this format, with one stat per line:
Stat = Points
Stat = Points`

// Point bounds for a single stat delta.
const (
	MinPoints = 1
	MaxPoints = 3
)

// ErrNoValidStats is returned when a reply contains no usable stat lines.
var ErrNoValidStats = errors.New("no valid stat lines in reply")

// Evaluator produces a raw model reply for a daily log.
type Evaluator interface {
	Evaluate(logText string) (string, error)
}

// BuildInput combines the fixed instruction with the user's log.
func BuildInput(logText string) string {
	return Prompt + "\nUser log: " + logText
}

// Parse scans the model reply for "Stat = Points" lines and returns the
// deltas for recognized stats. Lines that don't match, name an unknown
// stat, or carry a value outside 1..3 are skipped; parsing continues with
// the remaining lines. A reply with zero usable lines yields ErrNoValidStats.
func Parse(reply string) (map[string]int, error) {
	deltas := make(map[string]int)

	for _, line := range strings.Split(stripCodeFences(reply), "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "=") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		name := strings.Trim(strings.TrimSpace(parts[0]), "*")
		name = strings.TrimSpace(name)

		points, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			log.Printf("Warning: could not parse line %q. Skipping.", line)
			continue
		}

		if !stats.Known(name) {
			log.Printf("Warning: unknown stat %q. Skipping.", name)
			continue
		}
		if points < MinPoints || points > MaxPoints {
			log.Printf("Warning: points out of range in line %q. Skipping.", line)
			continue
		}

		deltas[name] += points
	}

	if len(deltas) == 0 {
		return nil, ErrNoValidStats
	}
	return deltas, nil
}

// stripCodeFences removes a surrounding markdown code block, which models
// routinely wrap plain-text output in.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if idx := strings.Index(text, "\n"); idx != -1 {
		if lastIdx := strings.LastIndex(text, "\n"); lastIdx > idx {
			return text[idx+1 : lastIdx]
		}
	}
	return text
}

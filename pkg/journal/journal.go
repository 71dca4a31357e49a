// Package journal keeps an append-only NDJSON record of past evaluation
// sessions, one line per session.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// MaxLogExcerpt is the number of characters of the day's log kept per entry.
const MaxLogExcerpt = 120

// Entry represents a single recorded session.
type Entry struct {
	Timestamp     string         `json:"timestamp"` // RFC3339 UTC
	Log           string         `json:"log"`       // excerpt of the day's log
	Deltas        map[string]int `json:"deltas"`
	PointsAwarded int            `json:"points_awarded"`
}

// DaySummary holds per-day aggregated history.
type DaySummary struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
	Points   int    `json:"points"`
}

// NewEntry builds an entry for the given log and deltas, stamped now.
func NewEntry(logText string, deltas map[string]int) Entry {
	total := 0
	for _, points := range deltas {
		total += points
	}
	return Entry{
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Log:           Excerpt(logText),
		Deltas:        deltas,
		PointsAwarded: total,
	}
}

// Excerpt trims a log line to MaxLogExcerpt characters.
func Excerpt(logText string) string {
	logText = strings.TrimSpace(logText)
	if len(logText) <= MaxLogExcerpt {
		return logText
	}
	return logText[:MaxLogExcerpt] + "..."
}

// Recorder appends entries to the journal file.
type Recorder struct {
	path string
}

// NewRecorder creates a Recorder writing to path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Record appends one entry to the journal. Failures are returned but the
// caller is expected to log and continue (fire-and-forget pattern).
func (r *Recorder) Record(e Entry) error {
	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("journal: marshal entry: %w", err)
	}
	line = append(line, '\n')

	f, err := os.OpenFile(r.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("journal: open file: %w", err)
	}
	defer f.Close()

	_, err = f.Write(line)
	return err
}

// ReadAll reads all entries from the journal at path.
// Malformed lines are skipped with a warning to stderr.
// Returns an empty slice (not an error) when the file does not exist.
func ReadAll(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("journal: open: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var e Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			fmt.Fprintf(os.Stderr, "journal: skipping malformed line %d: %v\n", lineNum, err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return entries, fmt.Errorf("journal: read: %w", err)
	}
	return entries, nil
}

// HistoryByDay groups entries by calendar day (UTC) and returns a slice
// sorted in descending order (most recent first).
func HistoryByDay(entries []Entry) []DaySummary {
	byDate := map[string]*DaySummary{}

	for _, e := range entries {
		day := "unknown"
		if len(e.Timestamp) >= 10 {
			day = e.Timestamp[:10] // "YYYY-MM-DD"
		}
		d, ok := byDate[day]
		if !ok {
			d = &DaySummary{Date: day}
			byDate[day] = d
		}
		d.Sessions++
		d.Points += e.PointsAwarded
	}

	days := make([]DaySummary, 0, len(byDate))
	for _, d := range byDate {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date > days[j].Date
	})
	return days
}

// Streak returns the number of consecutive days with at least one session,
// counting back from today. A streak that ended yesterday still counts, so
// today's session extends it rather than restarting at one.
func Streak(entries []Entry, today time.Time) int {
	seen := map[string]bool{}
	for _, e := range entries {
		if len(e.Timestamp) >= 10 {
			seen[e.Timestamp[:10]] = true
		}
	}

	day := today.UTC()
	if !seen[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
		if !seen[day.Format("2006-01-02")] {
			return 0
		}
	}

	streak := 0
	for seen[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

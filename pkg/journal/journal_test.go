package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordReadAll_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	rec := NewRecorder(path)

	e1 := NewEntry("studied for the exam", map[string]int{"Knowledge": 3})
	e2 := NewEntry("went jogging", map[string]int{"Health": 2, "Guts": 1})
	require.NoError(t, rec.Record(e1))
	require.NoError(t, rec.Record(e2))

	entries, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, e1, entries[0])
	assert.Equal(t, e2, entries[1])
	assert.Equal(t, 3, entries[0].PointsAwarded)
	assert.Equal(t, 3, entries[1].PointsAwarded)
}

func TestReadAll_MissingFile(t *testing.T) {
	entries, err := ReadAll(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadAll_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	content := `{"timestamp": "2026-08-27T10:00:00Z", "log": "a", "deltas": {"Guts": 1}, "points_awarded": 1}
this line is garbage
{"timestamp": "2026-08-27T18:00:00Z", "log": "b", "deltas": {"Charm": 2}, "points_awarded": 2}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	entries, err := ReadAll(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Log)
	assert.Equal(t, "b", entries[1].Log)
}

func TestExcerpt_TrimsLongLogs(t *testing.T) {
	long := strings.Repeat("x", 500)

	got := Excerpt(long)

	assert.Len(t, got, MaxLogExcerpt+3)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, "short log", Excerpt("  short log \n"))
}

func TestHistoryByDay(t *testing.T) {
	entries := []Entry{
		{Timestamp: "2026-08-25T09:00:00Z", PointsAwarded: 3},
		{Timestamp: "2026-08-26T09:00:00Z", PointsAwarded: 2},
		{Timestamp: "2026-08-26T21:00:00Z", PointsAwarded: 1},
	}

	days := HistoryByDay(entries)
	require.Len(t, days, 2)

	// Most recent first
	assert.Equal(t, "2026-08-26", days[0].Date)
	assert.Equal(t, 2, days[0].Sessions)
	assert.Equal(t, 3, days[0].Points)
	assert.Equal(t, "2026-08-25", days[1].Date)
	assert.Equal(t, 1, days[1].Sessions)
}

func TestStreak(t *testing.T) {
	today := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		{Timestamp: "2026-08-25T09:00:00Z"},
		{Timestamp: "2026-08-26T09:00:00Z"},
		{Timestamp: "2026-08-27T09:00:00Z"},
	}
	assert.Equal(t, 3, Streak(entries, today))
}

func TestStreak_CountsFromYesterday(t *testing.T) {
	today := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		{Timestamp: "2026-08-25T09:00:00Z"},
		{Timestamp: "2026-08-26T09:00:00Z"},
	}
	assert.Equal(t, 2, Streak(entries, today))
}

func TestStreak_BrokenByGap(t *testing.T) {
	today := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		{Timestamp: "2026-08-20T09:00:00Z"},
		{Timestamp: "2026-08-21T09:00:00Z"},
	}
	assert.Equal(t, 0, Streak(entries, today))
}

func TestStreak_SameDayRepeats(t *testing.T) {
	today := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	entries := []Entry{
		{Timestamp: "2026-08-26T09:00:00Z"},
		{Timestamp: "2026-08-27T09:00:00Z"},
		{Timestamp: "2026-08-27T20:00:00Z"},
	}
	assert.Equal(t, 2, Streak(entries, today))
}

func TestStreak_NoEntries(t *testing.T) {
	assert.Equal(t, 0, Streak(nil, time.Now()))
}

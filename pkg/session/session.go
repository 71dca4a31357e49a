// Package session runs the one-shot evaluation flow: load stats, read the
// day's log, ask the model, apply the parsed deltas, persist, display.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"lifesim/pkg/evaluator"
	"lifesim/pkg/gemini"
	"lifesim/pkg/journal"
	"lifesim/pkg/openai"
	"lifesim/pkg/stats"
)

type Session struct {
	provider    evaluator.Evaluator
	statsPath   string
	journalPath string
	in          *bufio.Reader
	out         io.Writer
}

// New creates a session reading the day's log from in and writing all
// user-facing output to out.
func New(provider evaluator.Evaluator, statsPath, journalPath string, in io.Reader, out io.Writer) *Session {
	return &Session{
		provider:    provider,
		statsPath:   statsPath,
		journalPath: journalPath,
		in:          bufio.NewReader(in),
		out:         out,
	}
}

// Run executes one evaluation session. On any provider or parser failure the
// stored record is left untouched and the error is returned for a non-zero
// process exit.
func (s *Session) Run() error {
	record := stats.Load(s.statsPath)
	s.display(record)

	fmt.Fprint(s.out, "\nEnter your log of the day to determine stat increase: ")
	line, err := s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to read input: %w", err)
	}
	logText := strings.TrimSpace(line)
	if logText == "" {
		fmt.Fprintln(s.out, "No activity logged. Exiting.")
		return nil
	}

	fmt.Fprintln(s.out, "\n--- Sending log to AI for evaluation... ---")
	reply, err := s.provider.Evaluate(logText)
	if err != nil {
		s.reportAPIError(err)
		return fmt.Errorf("evaluation failed: %w", err)
	}

	fmt.Fprintln(s.out, "\n--- AI Evaluation Result ---")
	fmt.Fprintln(s.out, reply)
	fmt.Fprintln(s.out, "--------------------------")

	deltas, err := evaluator.Parse(reply)
	if err != nil {
		fmt.Fprintln(s.out, "No valid stat updates were parsed from the AI's response.")
		return err
	}

	for _, name := range stats.Names {
		if points, ok := deltas[name]; ok {
			fmt.Fprintf(s.out, "Updated %s: +%d points.\n", name, points)
		}
	}

	record.Apply(deltas)
	if err := stats.Save(s.statsPath, record); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Stats saved to %s\n", s.statsPath)

	// Journal failures shouldn't fail the session; the stats are already saved.
	if err := journal.NewRecorder(s.journalPath).Record(journal.NewEntry(logText, deltas)); err != nil {
		log.Printf("Warning: could not record session journal: %v", err)
	}

	s.display(record)
	s.displayStreak()
	fmt.Fprintln(s.out, "\nSession complete. Your stats have been updated!")
	return nil
}

func (s *Session) display(record stats.Record) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, stats.FormatRecord(record))
}

func (s *Session) displayStreak() {
	entries, err := journal.ReadAll(s.journalPath)
	if err != nil {
		return
	}
	if streak := journal.Streak(entries, time.Now()); streak > 1 {
		fmt.Fprintf(s.out, "Streak: %d days in a row!\n", streak)
	}
}

// reportAPIError prints a hint matching the failure class before the session
// bails out.
func (s *Session) reportAPIError(err error) {
	fmt.Fprintf(s.out, "\nAn API error occurred: %v\n", err)

	var apiErr *gemini.APIError
	switch {
	case errors.As(err, &apiErr) && apiErr.IsRateLimit():
		fmt.Fprintln(s.out, "You might have hit a rate limit. Wait a bit and try again.")
	case errors.As(err, &apiErr) && apiErr.IsAuth():
		fmt.Fprintln(s.out, "Your API key might have issues. Verify its permissions with your provider.")
	case openai.IsRateLimitOrAuthError(err):
		fmt.Fprintln(s.out, "Your API key might be invalid or rate limited. Verify it and try again.")
	default:
		fmt.Fprintln(s.out, "Please check your API key, network connection, or try again later.")
	}
}

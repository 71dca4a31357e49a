package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"lifesim/pkg/journal"
)

var (
	historyJSON  bool
	historyLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show a per-day summary of past evaluation sessions",
	Long: `Display a per-day breakdown of past sessions from the local journal.

Every successful session appends one entry to the journal file. This
command aggregates those entries by calendar day, most recent first.`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVarP(&historyJSON, "json", "j", false, "Output results in JSON format")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 30, "Max days shown")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	entries, err := journal.ReadAll(cfg.Storage.JournalFile)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println("Run lifesim with no arguments to log your first day.")
		return nil
	}

	days := journal.HistoryByDay(entries)
	if historyLimit > 0 && len(days) > historyLimit {
		days = days[:historyLimit]
	}

	if historyJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(days)
	}

	printHistoryTable(days)
	return nil
}

func printHistoryTable(days []journal.DaySummary) {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	colDate := lipgloss.NewStyle().Width(14)
	colNum := lipgloss.NewStyle().Width(10)
	colPoints := lipgloss.NewStyle().Width(10)

	header := dimStyle.Render(
		colDate.Render("Date") +
			colNum.Render("Sessions") +
			colPoints.Render("Points"),
	)
	sep := dimStyle.Render(fmt.Sprintf("%-14s %-10s %-10s", "──────────────", "─────────", "─────────"))
	fmt.Println(header)
	fmt.Println(sep)

	for _, d := range days {
		row := colDate.Render(d.Date) +
			colNum.Render(fmt.Sprintf("%d", d.Sessions)) +
			colPoints.Render(fmt.Sprintf("%d", d.Points))
		fmt.Println(valueStyle.Render(row))
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"lifesim/pkg/journal"
	"lifesim/pkg/stats"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your current stats without starting a session",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVarP(&statsJSON, "json", "j", false, "Output results in JSON format")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	record := stats.Load(cfg.Storage.StatsFile)

	if statsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	}

	entries, err := journal.ReadAll(cfg.Storage.JournalFile)
	if err != nil {
		return fmt.Errorf("failed to read journal: %w", err)
	}
	streak := journal.Streak(entries, time.Now())

	fmt.Println(renderRecord(record, streak))
	return nil
}

// renderRecord renders the record as a lipgloss-styled report box.
func renderRecord(record stats.Record, streak int) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(11)
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("62"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)

	content := headerStyle.Render("lifesim — Current Stats") + "\n\n"

	for _, name := range stats.Names {
		points := record[name]
		rank := stats.RankFor(points)
		content += labelStyle.Render(name) +
			barStyle.Render(stats.Bar(points)) +
			valueStyle.Render(fmt.Sprintf(" %4d", points)) +
			dimStyle.Render("  "+rank.Name) + "\n"
	}

	content += "\n" + dimStyle.Render(fmt.Sprintf("Total points: %d", record.Total()))
	if streak > 0 {
		content += dimStyle.Render(fmt.Sprintf("  ·  Streak: %d day(s)", streak))
	}

	return boxStyle.Render(content)
}

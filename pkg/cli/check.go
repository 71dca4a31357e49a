package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lifesim/pkg/gemini"
)

// targetModels are checked in preference order when looking for a usable
// generation model.
var targetModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-pro",
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify API key access and list usable Gemini models",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if _, err := setup(); err != nil {
		return err
	}

	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return fmt.Errorf("missing required environment variable: GEMINI_API_KEY")
	}

	client := gemini.NewClient(key, "")

	fmt.Println("Attempting to list available Gemini models...")
	models, err := client.ListModels()
	if err != nil {
		var apiErr *gemini.APIError
		if errors.As(err, &apiErr) && apiErr.IsAuth() {
			fmt.Println("This strongly suggests your API key is invalid.")
		}
		return fmt.Errorf("model listing failed: %w", err)
	}

	found := ""
	for _, target := range targetModels {
		for _, m := range models {
			if strings.Contains(m.Name, target) && m.SupportsGeneration() {
				found = m.Name
				break
			}
		}
		if found != "" {
			break
		}
	}

	if found == "" {
		fmt.Println("Your API key does NOT appear to have access to any of the recommended models for text generation.")
		fmt.Println("Tried to find: " + strings.Join(targetModels, ", "))
		fmt.Println("Available models:")
		for _, m := range models {
			fmt.Printf("- %s (methods: %s)\n", m.Name, strings.Join(m.Methods, ", "))
		}
		return fmt.Errorf("no compatible generation model available")
	}

	fmt.Printf("Access to compatible model found: %s\n", found)
	fmt.Println("Your API key is active and has access to a compatible Gemini model for text generation.")
	return nil
}

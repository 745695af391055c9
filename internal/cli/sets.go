package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newSetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Question set commands",
	}

	cmd.AddCommand(newSetsListCmd())
	cmd.AddCommand(newSetsCreateCmd())
	cmd.AddCommand(newSetsDeleteCmd())

	return cmd
}

func newSetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available question sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []QuestionSetInfo

			if err := client.Get("/api/v1/question-sets", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSetsCreateCmd() *cobra.Command {
	var (
		description string
		file        string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a custom question set from a JSON file",
		Long: `Create a custom question set. The --file argument points to a JSON
file containing an array of questions:

  [{"prompt": "2 + 2", "answer": 4}, {"prompt": "3 * 3", "answer": 9}]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read questions file: %w", err)
			}

			var questions []map[string]any
			if err := json.Unmarshal(data, &questions); err != nil {
				return fmt.Errorf("failed to parse questions file: %w", err)
			}

			req := map[string]any{
				"name":        args[0],
				"description": description,
				"questions":   questions,
			}

			var result QuestionSetInfo

			if err := client.Post("/api/v1/question-sets", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Question set description")
	cmd.Flags().StringVar(&file, "file", "", "JSON file with questions (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newSetsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a custom question set you own",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]

			if err := client.Delete(fmt.Sprintf("/api/v1/question-sets/%s", id)); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Deleted question set %s", id))
			return nil
		},
	}
}

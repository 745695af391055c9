package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Player commands",
	}

	cmd.AddCommand(newPlayAnswerCmd())
	cmd.AddCommand(newPlayGiveUpCmd())
	cmd.AddCommand(newPlayProgressCmd())
	cmd.AddCommand(newPlayAnswersCmd())

	return cmd
}

func newPlayAnswerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answer <player-id> <question-index> <value>",
		Short: "Submit an answer to a question",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid question index: %s", args[1])
			}
			value, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid answer value: %s", args[2])
			}

			req := map[string]any{
				"question_index": index,
				"value":          value,
			}

			var result SubmitResult

			if err := client.Post(fmt.Sprintf("/api/v1/players/%s/answers", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayGiveUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "giveup <player-id> <question-index>",
		Short: "Give up on a question",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid question index: %s", args[1])
			}

			req := map[string]any{
				"question_index": index,
				"give_up":        true,
			}

			var result SubmitResult

			if err := client.Post(fmt.Sprintf("/api/v1/players/%s/answers", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Gave up on question %d", index))
			return nil
		},
	}
}

func newPlayProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <player-id>",
		Short: "Show a player's progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Progress

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s/progress", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPlayAnswersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answers <player-id>",
		Short: "List a player's submitted answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Answer

			if err := client.Get(fmt.Sprintf("/api/v1/players/%s/answers", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

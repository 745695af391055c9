package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Session hosting commands",
	}

	cmd.AddCommand(newSessionCreateCmd())
	cmd.AddCommand(newSessionGetCmd())
	cmd.AddCommand(newSessionFindCmd())
	cmd.AddCommand(newSessionStartCmd())
	cmd.AddCommand(newSessionEndCmd())
	cmd.AddCommand(newSessionJoinCmd())
	cmd.AddCommand(newSessionLeaderboardCmd())

	return cmd
}

func newSessionCreateCmd() *cobra.Command {
	var questionSetID string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new session",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"question_set_id": questionSetID}

			var result Session

			if err := client.Post("/api/v1/sessions", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&questionSetID, "set", "basic-arithmetic", "Question set ID")

	return cmd
}

func newSessionGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get session details by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <code>",
		Short: "Find a session by room code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/code/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if result.ID == "" {
				out.PrintMessage(fmt.Sprintf("No session found for code %s", args[0]))
				return nil
			}
			out.Print(result)
			return nil
		},
	}
}

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <id>",
		Short: "Start a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/start", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end <id>",
		Short: "End a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Session

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/end", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newSessionJoinCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "join <id>",
		Short: "Join a session as a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}

			var result Player

			if err := client.Post(fmt.Sprintf("/api/v1/sessions/%s/join", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player display name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSessionLeaderboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard <id>",
		Short: "Show the session leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []LeaderboardEntry

			if err := client.Get(fmt.Sprintf("/api/v1/sessions/%s/leaderboard", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

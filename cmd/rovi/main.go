package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"rovi/internal/bootstrap"
	"rovi/internal/platform/config"
	"rovi/internal/platform/timefmt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "rovi",
		Short:         "Personal assistant dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", defaultDataDir(), "data directory")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newAskCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newSessionCmd(&dataDir))
	root.AddCommand(newOverrideCmd(&dataDir))
	root.AddCommand(newWeatherCmd(&dataDir))
	root.AddCommand(newQuoteCmd(&dataDir))
	root.AddCommand(newSummaryCmd(&dataDir))
	return root
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".rovi")
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the rovi terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newAskCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Send a message to the assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.AssistantCLI.Ask(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Reply)
			return nil
		},
	}
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	history := &cobra.Command{Use: "history", Short: "Chat history"}

	var limit int
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print recent chat turns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			turns, err := app.AssistantCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			for _, turn := range turns {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-9s %s\n", turn.Role, turn.Content)
			}
			return nil
		},
	}
	showCmd.Flags().IntVar(&limit, "limit", 20, "maximum turns to print")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all chat turns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.AssistantCLI.ClearHistory(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	}

	history.AddCommand(showCmd, clearCmd)
	return history
}

func newSessionCmd(dataDir *string) *cobra.Command {
	session := &cobra.Command{Use: "session", Short: "Inspect or reset the session"}

	var baseline bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the session snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			show := app.SessionCLI.Show
			if baseline {
				show = app.SessionCLI.ShowBaseline
			}
			out, err := show(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, "Meetings")
			for _, meeting := range out.Meetings {
				_, _ = fmt.Fprintf(w, "  %s  %s (%s)\n",
					timefmt.Format12(meeting.Time), meeting.Title, strings.Join(meeting.Participants, ", "))
			}
			_, _ = fmt.Fprintln(w, "Habits")
			for _, habit := range out.Habits {
				_, _ = fmt.Fprintf(w, "  %-24s %d/%d\n", habit.Name, habit.Progress, habit.Target)
			}
			_, _ = fmt.Fprintln(w, "Expenses")
			for _, expense := range out.Expenses {
				_, _ = fmt.Fprintf(w, "  %-16s $%.2f  (%s)\n", expense.Category, expense.Amount, expense.Date)
			}
			_, _ = fmt.Fprintf(w, "  total            $%.2f\n", out.TotalExpenses)
			_, _ = fmt.Fprintln(w, "Prices")
			for _, item := range out.Prices {
				_, _ = fmt.Fprintf(w, "  %-16s $%.2f\n", item.Name, item.Cheapest)
			}
			return nil
		},
	}
	showCmd.Flags().BoolVar(&baseline, "baseline", false, "ignore overrides")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the session and overrides, regenerating on next read",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionCLI.Reset(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "session reset")
			return nil
		},
	}

	session.AddCommand(showCmd, resetCmd)
	return session
}

func newOverrideCmd(dataDir *string) *cobra.Command {
	override := &cobra.Command{Use: "override", Short: "Manage session overrides"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print the stored overrides",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.Overrides(context.Background())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for name, progress := range out.Habits {
				_, _ = fmt.Fprintf(w, "habit    %-24s %d\n", name, progress)
			}
			for category, amount := range out.Expenses {
				_, _ = fmt.Fprintf(w, "expense  %-24s $%.2f\n", category, amount)
			}
			for item, price := range out.Prices {
				_, _ = fmt.Fprintf(w, "price    %-24s $%.2f\n", item, price)
			}
			return nil
		},
	}

	setHabitCmd := &cobra.Command{
		Use:   "set-habit <name> <progress>",
		Short: "Override a habit's progress",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			progress, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("progress must be an integer: %w", err)
			}
			if err := app.SessionCLI.SetHabit(context.Background(), args[0], progress); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "habit %q set to %d\n", args[0], progress)
			return nil
		},
	}

	setExpenseCmd := &cobra.Command{
		Use:   "set-expense <category> <amount>",
		Short: "Override a spending category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("amount must be a number: %w", err)
			}
			if err := app.SessionCLI.SetExpense(context.Background(), args[0], amount); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "expense %q set to $%.2f\n", args[0], amount)
			return nil
		},
	}

	setPriceCmd := &cobra.Command{
		Use:   "set-price <item> <price>",
		Short: "Override a price-watch item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("price must be a number: %w", err)
			}
			if err := app.SessionCLI.SetPrice(context.Background(), args[0], price); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "price %q set to $%.2f\n", args[0], price)
			return nil
		},
	}

	var scope string
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Reset overrides for a scope",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionCLI.ClearOverrides(context.Background(), scope); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "overrides cleared (%s)\n", scope)
			return nil
		},
	}
	clearCmd.Flags().StringVar(&scope, "scope", "all", "prices|habits|expenses|all")

	override.AddCommand(listCmd, setHabitCmd, setExpenseCmd, setPriceCmd, clearCmd)
	return override
}

func newWeatherCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "weather [city]",
		Short: "Print current weather",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			city := app.Config.City
			if len(args) == 1 {
				city = args[0]
			}
			out, err := app.WeatherCLI.Current(context.Background(), city)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %d°C  %s\n", out.City, out.Temperature, out.Description)
			return nil
		},
	}
}

func newQuoteCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print the quote of the day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.BriefingCLI.Quote(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%q — %s\n", out.Text, out.Author)
			return nil
		},
	}
}

func newSummaryCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the daily summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.BriefingCLI.Summary(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}
}

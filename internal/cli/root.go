package cli

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/me/taskflow/internal/logging"
)

var (
	flagServer    string
	flagDebug     bool
	flagNoColor   bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	client *Client
)

// defaultServer returns the default server URL, checking TASKFLOW_SERVER env var first.
func defaultServer() string {
	if s := os.Getenv("TASKFLOW_SERVER"); s != "" {
		return s
	}
	return "http://localhost:8080"
}

// NewRootCmd creates the root cobra command for the taskflow CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "taskflow",
		Short: "taskflow: deadline-aware task planner",
		Long:  "taskflow records tasks with deadlines, estimates and priorities, and plans the order to work on them.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagDebug {
				flagLogLevel = "debug"
			}
			if flagNoColor {
				color.NoColor = true
			}
			logger = logging.NewLogger(logging.ParseLevel(flagLogLevel), flagLogFormat)
			client = NewClient(flagServer, logger)
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "taskflow server URL (or TASKFLOW_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json, console)")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newAddCmd(),
		newStatusCmd(),
		newDoneCmd(),
		newDeleteCmd(),
		newSummaryCmd(),
		newImportCmd(),
		newScheduleCmd(),
		newCompareCmd(),
	)

	return root
}

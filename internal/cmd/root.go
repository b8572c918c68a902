package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsmmcken/distman/internal/dist"
	"github.com/dsmmcken/distman/internal/output"
	"github.com/dsmmcken/distman/internal/tui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Version = "dev"

var (
	jsonFlag    bool
	verboseFlag bool
	quietFlag   bool
	noColorFlag bool
	ConfigDir   string
)

// logger is rebuilt by PersistentPreRunE for every invocation.
var logger = logrus.New()

func NewRootCmd() *cobra.Command {
	cmd := newRootCmd()
	addDistCommands(cmd)
	addCacheCommand(cmd)
	addConfigCommands(cmd)
	addInfoCommand(cmd)
	return cmd
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "distman",
		Short:         "Distribution version manager",
		Long:          "distman — manage locally installed tool distributions and their caches.",
		Version:       fmt.Sprintf("distman v%s", Version),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verboseFlag && quietFlag {
				return fail(cmd, fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", ErrUsage))
			}
			if jsonFlag {
				quietFlag = true
			}
			output.SetFlags(jsonFlag, quietFlag, verboseFlag, noColorFlag)
			logger = output.NewLogger(cmd.ErrOrStderr())
			return nil
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fi, _ := os.Stdin.Stat()
			isTTY := fi != nil && (fi.Mode()&os.ModeCharDevice) != 0
			if !isTTY || output.IsJSON() {
				return cmd.Help()
			}

			e, err := loadEnv()
			if err != nil {
				return fail(cmd, err)
			}
			remover := &dist.Remover{Resolver: e.resolver, Log: logger}
			p := tea.NewProgram(tui.NewRemoveScreen(e.resolver, remover), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fail(cmd, fmt.Errorf("%w: %w", ErrUsage, err))
	})

	pflags := rootCmd.PersistentFlags()
	pflags.BoolVarP(&jsonFlag, "json", "j", false, "Output as JSON")
	pflags.BoolVarP(&verboseFlag, "verbose", "v", false, "Extra detail to stderr")
	pflags.BoolVarP(&quietFlag, "quiet", "q", false, "Suppress non-essential output")
	pflags.BoolVar(&noColorFlag, "no-color", false, "Disable ANSI colors")
	pflags.StringVar(&ConfigDir, "config-dir", "", "Override distman home (default: $DISTMAN_HOME or ~/.distman)")

	if os.Getenv("NO_COLOR") != "" {
		noColorFlag = true
	}
	if os.Getenv("DISTMAN_JSON") == "1" {
		jsonFlag = true
	}

	return rootCmd
}

func Execute() error {
	cmd := NewRootCmd()
	return cmd.Execute()
}

// Main runs the CLI and returns the process exit code.
func Main() int {
	if err := Execute(); err != nil {
		// JSON mode already wrote an error envelope.
		if !jsonFlag {
			fmt.Fprintln(os.Stderr, output.Render(output.StyleError, "error:"), err)
		}
		return ExitCode(err)
	}
	return output.ExitSuccess
}

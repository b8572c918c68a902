package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dsmmcken/distman/internal/dist"
	"github.com/dsmmcken/distman/internal/output"
	"github.com/spf13/cobra"
)

var removeForceFlag bool

func addDistCommands(parent *cobra.Command) {
	parent.AddCommand(newRemoveCmd())
	parent.AddCommand(newListCmd())
	parent.AddCommand(newUseCmd())
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <DIST>",
		Aliases: []string{"rm"},
		Short:   "Remove an installed distribution",
		Long:    "Delete an installed distribution directory. The active distribution cannot be removed.",
		Example: "  distman remove dist-1.2.0",
		Args:    exactlyOneDist,
		RunE:    runRemove,
	}

	cmd.Flags().BoolVarP(&removeForceFlag, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	e, err := loadEnv()
	if err != nil {
		return fail(cmd, err)
	}

	// Confirm unless --force or --json
	if !removeForceFlag && !output.IsJSON() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Remove distribution '%s'? [y/N] ", id)
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(cmd.ErrOrStderr(), "Cancelled.")
			return nil
		}
	}

	remover := &dist.Remover{Resolver: e.resolver, Log: logger}
	if err := remover.Remove(id); err != nil {
		return fail(cmd, err)
	}

	if output.IsJSON() {
		path, _ := e.resolver.Resolve(id)
		return output.PrintJSON(cmd.OutOrStdout(), map[string]any{
			"id":     id,
			"path":   path,
			"status": "removed",
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.Render(output.StyleSuccess, fmt.Sprintf("Distribution '%s' successfully removed", id)))
	return nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List installed distributions",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return fail(cmd, err)
	}

	installed, err := dist.ListInstalled(e.resolver)
	if err != nil {
		return fail(cmd, err)
	}
	if installed == nil {
		installed = []dist.Installed{}
	}

	if output.IsJSON() {
		return output.PrintJSON(cmd.OutOrStdout(), map[string]any{
			"installed":    installed,
			"active":       e.resolver.ActiveID(),
			"install_root": e.paths.InstallRoot,
		})
	}

	if len(installed) == 0 {
		if !output.IsQuiet() {
			fmt.Fprintf(cmd.OutOrStdout(), "No distributions installed in %s.\n", e.paths.InstallRoot)
		}
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DISTRIBUTION\tACTIVE\tINSTALLED")
	for _, in := range installed {
		active := ""
		if in.IsActive {
			active = "*"
		}
		date := ""
		if !in.InstalledAt.IsZero() {
			date = in.InstalledAt.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", in.ID, active, date)
	}
	return w.Flush()
}

func newUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <DIST>",
		Short: "Set the active distribution",
		Long:  "Mark an installed distribution as active. The active distribution is protected from removal.",
		Args:  exactlyOneDist,
		RunE:  runUse,
	}
}

func runUse(cmd *cobra.Command, args []string) error {
	id := args[0]

	e, err := loadEnv()
	if err != nil {
		return fail(cmd, err)
	}

	if err := dist.Activate(e.resolver, e.paths.VersionFile, id); err != nil {
		return fail(cmd, err)
	}

	if output.IsJSON() {
		return output.PrintJSON(cmd.OutOrStdout(), map[string]any{
			"active":       id,
			"version_file": e.paths.VersionFile,
		})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set active distribution to %s\n", id)
	return nil
}

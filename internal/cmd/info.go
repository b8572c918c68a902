package cmd

import (
	"fmt"

	"github.com/dsmmcken/distman/internal/output"
	"github.com/dsmmcken/distman/internal/platform"
	"github.com/spf13/cobra"
)

// currentPlatform is swapped in tests.
var currentPlatform = platform.Current

func addInfoCommand(parent *cobra.Command) {
	parent.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show distman paths and platform details",
		Args:  cobra.NoArgs,
		RunE:  runInfo,
	})
}

func runInfo(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return fail(cmd, err)
	}

	p := currentPlatform()
	active := e.resolver.ActiveID()
	activeVersion := e.resolver.ActiveVersion
	if activeVersion == "" {
		activeVersion = "none"
	}
	info := map[string]any{
		"home":          e.paths.Home,
		"install_root":  e.paths.InstallRoot,
		"active":        active,
		"platform":      platform.Label(p),
		"executable":    platform.ExecutableName(p),
		"install":       platform.InstallScriptName(p),
		"debug_adapter": platform.DebugAdapterName(p),
		"lang_server":   platform.LangServerLauncherName(p),
		"user_agent":    platform.UserAgent(e.resolver.DistType, activeVersion, Version, p),
	}

	if output.IsJSON() {
		return output.PrintJSON(cmd.OutOrStdout(), info)
	}

	if active == "" {
		active = output.Render(output.StyleDim, "(none)")
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Home:         %s\n", e.paths.Home)
	fmt.Fprintf(w, "Install root: %s\n", e.paths.InstallRoot)
	fmt.Fprintf(w, "Active:       %s\n", active)
	fmt.Fprintf(w, "Platform:     %s\n", info["platform"])
	fmt.Fprintf(w, "Executable:   %s\n", info["executable"])
	fmt.Fprintf(w, "Install:      %s\n", info["install"])
	fmt.Fprintf(w, "Debug:        %s\n", info["debug_adapter"])
	fmt.Fprintf(w, "Lang server:  %s\n", info["lang_server"])
	fmt.Fprintf(w, "User agent:   %s\n", info["user_agent"])
	return nil
}

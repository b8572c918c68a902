package cmd

import (
	"fmt"

	"github.com/dsmmcken/distman/internal/dist"
	"github.com/dsmmcken/distman/internal/fsops"
	"github.com/dsmmcken/distman/internal/output"
	"github.com/spf13/cobra"
)

var (
	cacheBirFlag bool
	cacheJarFlag bool
)

type cacheResult struct {
	Name   string   `json:"name"`
	Path   string   `json:"path"`
	Failed []string `json:"failed"`
}

func addCacheCommand(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "clean-cache",
		Short: "Clear compiled caches",
		Long:  "Delete the BIR and jar caches under the distman home. Entries that cannot be removed are reported and skipped.",
		Args:  cobra.NoArgs,
		RunE:  runCleanCache,
	}

	cmd.Flags().BoolVar(&cacheBirFlag, "bir", false, "Clear only the BIR cache")
	cmd.Flags().BoolVar(&cacheJarFlag, "jar", false, "Clear only the jar cache")

	parent.AddCommand(cmd)
}

func runCleanCache(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return fail(cmd, err)
	}

	both := !cacheBirFlag && !cacheJarFlag
	var tree fsops.Tree
	var results []cacheResult
	if both || cacheBirFlag {
		failed := dist.ClearBirCache(tree, e.paths, logger)
		results = append(results, cacheResult{Name: "bir", Path: e.paths.BirCache, Failed: failed})
	}
	if both || cacheJarFlag {
		failed := dist.ClearJarCache(tree, e.paths, logger)
		results = append(results, cacheResult{Name: "jar", Path: e.paths.JarCache, Failed: failed})
	}

	if output.IsJSON() {
		return output.PrintJSON(cmd.OutOrStdout(), map[string]any{"caches": results})
	}
	if output.IsQuiet() {
		return nil
	}

	for _, r := range results {
		if len(r.Failed) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %s cache (%s)\n", r.Name, r.Path)
			continue
		}
		msg := fmt.Sprintf("Cleared %s cache (%s); %d entries could not be removed", r.Name, r.Path, len(r.Failed))
		fmt.Fprintln(cmd.OutOrStdout(), output.Render(output.StyleWarning, msg))
	}
	return nil
}

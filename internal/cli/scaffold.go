package cli

import (
	"fmt"
	"log/slog"

	"github.com/bloomcart/storeseed/internal/config"
	"github.com/bloomcart/storeseed/internal/manifest"
	"github.com/bloomcart/storeseed/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	scaffoldRoot     string
	scaffoldManifest string
)

func init() {
	scaffoldCmd.Flags().StringVar(&scaffoldRoot, "root", "", "Directory to scaffold into (default: config scaffold.root, \".\")")
	scaffoldCmd.Flags().StringVar(&scaffoldManifest, "manifest", "", "Scaffold from a YAML manifest file instead of the built-in storefront layout")
	rootCmd.AddCommand(scaffoldCmd)
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Create the storefront folder structure and placeholder files",
	Long: `Create every folder of the storefront layout and a placeholder for every file.

Existing folders and files are never modified: a file that is already present is
skipped even if its content differs from the placeholder, so the command is safe
to re-run on a project that is in progress. A folder or file that cannot be
created is reported and the run carries on with the rest of the layout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManifest(scaffoldManifest)
		if err != nil {
			return err
		}
		root := settingOr(scaffoldRoot, config.KeyScaffoldRoot)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Scaffolding %d folders and %d files into %s\n", len(m.Entries), m.FileCount(), root)

		p := newPrinter(cmd)
		r := scaffold.Apply(afero.NewOsFs(), root, m, scaffold.WithPrinter(p))
		p.Summaryf("Scaffolding complete: %d created, %d skipped, %d failed.", r.Created(), r.Skipped(), r.Failed())

		// Item failures are reported above and do not change the exit status.
		if !r.OK() {
			slog.Warn("scaffold finished with errors", "failed", r.Failed())
		}
		return nil
	},
}

// loadManifest returns the manifest at path, or the built-in storefront
// manifest when path is empty.
func loadManifest(path string) (*manifest.Manifest, error) {
	if path == "" {
		return manifest.Storefront()
	}
	return manifest.Load(path)
}

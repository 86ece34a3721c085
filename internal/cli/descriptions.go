package cli

import (
	"log/slog"

	"github.com/bloomcart/storeseed/internal/config"
	"github.com/bloomcart/storeseed/internal/content"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	descriptionsDir string
	descriptionsExt string
)

func init() {
	descriptionsCmd.Flags().StringVar(&descriptionsDir, "dir", "", "Output directory (default: config descriptions.dir, \"data/descriptions\")")
	descriptionsCmd.Flags().StringVar(&descriptionsExt, "ext", "", "Output file extension (default: config descriptions.ext, \"md\")")
	rootCmd.AddCommand(descriptionsCmd)
}

var descriptionsCmd = &cobra.Command{
	Use:   "descriptions",
	Short: "Regenerate the product description pages",
	Long: `Write every built-in product description to <dir>/<id>.<ext>.

Every file is overwritten on each run. The descriptions are generated content;
edit the built-in table, not the output files.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := content.Descriptions()
		if err != nil {
			return err
		}
		dir := settingOr(descriptionsDir, config.KeyDescriptionsDir)
		ext := settingOr(descriptionsExt, config.KeyDescriptionsExt)

		p := newPrinter(cmd)
		r := content.Emit(afero.NewOsFs(), dir, records, content.WithExt(ext), content.WithPrinter(p))
		p.Summaryf("Generated %d of %d descriptions in %s (%d failed).", r.Written(), len(records), dir, r.Failed())

		if !r.OK() {
			slog.Warn("descriptions finished with errors", "failed", r.Failed())
		}
		return nil
	},
}

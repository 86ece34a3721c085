package cli

import (
	"errors"
	"fmt"

	"github.com/bloomcart/storeseed/internal/manifest"
	"github.com/spf13/cobra"
)

var manifestShowFile string

func init() {
	manifestShowCmd.Flags().StringVar(&manifestShowFile, "manifest", "", "Show this manifest file instead of the built-in layout")
	manifestCmd.AddCommand(manifestShowCmd)
	manifestCmd.AddCommand(manifestValidateCmd)
	rootCmd.AddCommand(manifestCmd)
}

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect and validate scaffold manifests",
}

var manifestShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the scaffold manifest as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManifest(manifestShowFile)
		if err != nil {
			return err
		}
		out, err := manifest.Marshal(m)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var manifestValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a manifest file against the schema and path rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := manifest.ValidateFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if res.Valid {
			fmt.Fprintf(out, "%s is valid\n", args[0])
			return nil
		}

		fmt.Fprintf(out, "%s is invalid:\n", args[0])
		for _, issue := range res.Issues {
			fmt.Fprintf(out, "  - %s\n", issue)
		}
		return errors.New("manifest validation failed")
	},
}

package cli

import (
	"log/slog"

	"github.com/bloomcart/storeseed/internal/branding"
	"github.com/bloomcart/storeseed/internal/config"
	"github.com/bloomcart/storeseed/internal/logging"
	"github.com/bloomcart/storeseed/internal/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagVerbose bool
	flagNoColor bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable coloured output")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` bootstraps the storefront web app: it lays down the project folder
structure with placeholder files and regenerates the product description pages.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		level := logging.ParseLevel(config.Get(config.KeyLogLevel))
		if flagVerbose {
			level = slog.LevelDebug
		}
		logging.Setup(cmd.ErrOrStderr(), level, !useColor())
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

func useColor() bool {
	return !flagNoColor && config.GetBool(config.KeyColor) && !color.NoColor
}

// newPrinter returns a progress printer bound to the command's stdout.
func newPrinter(cmd *cobra.Command) *report.Printer {
	return report.NewPrinter(cmd.OutOrStdout(), useColor())
}

// settingOr returns flag when set, otherwise the config value for key.
func settingOr(flag, key string) string {
	if flag != "" {
		return flag
	}
	return config.Get(key)
}

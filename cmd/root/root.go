// Package root contains the root command for the application
package root

import (
	"fjacquet/bureau-json/internal/common"
	"fjacquet/bureau-json/internal/config"
	"fjacquet/bureau-json/internal/parser"
	"fjacquet/bureau-json/internal/store"
	"fjacquet/bureau-json/internal/xmlutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, available after
	// PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bureau-json",
		Short: "A CLI tool to normalize credit bureau XML reports to JSON and CSV.",
		Long: `bureau-json is a CLI tool that converts credit bureau XML reports
(CIBIL, Experian, CRIF HighMark, Equifax, or unknown schemas) into one
normalized JSON structure, and derives account summary statistics.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bureau-json!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger everywhere
			parser.SetLogger(Log)
			common.SetLogger(Log)
			store.SetLogger(Log)
			xmlutils.SetLogger(Log)

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.WithError(err).Warn("Failed to load configuration, using defaults")
			} else {
				Cfg = cfg
				if cfg.CSV.Delimiter != "" {
					common.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
				}
			}

			// Merge optional code-label overrides before any extraction.
			codeStore := store.NewCodeStore(codeFiles())
			if err := codeStore.LoadOverrides(); err != nil {
				Log.WithError(err).Warn("Failed to load code label overrides")
			}
		},
	}

	// SharedFlags holds the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

func codeFiles() (string, string) {
	if Cfg == nil {
		return "", ""
	}
	return Cfg.Codes.TypesFile, Cfg.Codes.StatusesFile
}

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate XML before conversion")
}

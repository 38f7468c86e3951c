// Package parse handles single-report conversion commands
package parse

import (
	"github.com/spf13/cobra"

	"fjacquet/bureau-json/cmd/common"
	"fjacquet/bureau-json/cmd/root"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Normalize a bureau XML report to JSON",
	Long:  `Normalize a credit bureau XML report (any supported schema) into the canonical JSON structure.`,
	Run:   parseFunc,
}

var includeRaw bool

func init() {
	Cmd.Flags().BoolVar(&includeRaw, "raw", true, "Include raw source subtrees in the JSON output")
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Parse command called")
	root.Log.Infof("Input XML file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output JSON file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	opts := common.Options{
		Validate:   root.SharedFlags.Validate,
		Indent:     true,
		IncludeRaw: includeRaw,
	}
	if root.Cfg != nil {
		opts.Indent = root.Cfg.Output.Indent
		opts.IncludeRaw = includeRaw && root.Cfg.Output.IncludeRaw
	}

	if err := common.ProcessReportFile(root.SharedFlags.Input, root.SharedFlags.Output, opts, root.Log); err != nil {
		root.Log.Fatalf("Error converting report: %v", err)
	}
	root.Log.Info("XML to JSON conversion completed successfully!")
}

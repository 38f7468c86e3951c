// Package detect handles the format probe command
package detect

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/bureau-json/cmd/root"
	"fjacquet/bureau-json/internal/fileutils"
	"fjacquet/bureau-json/internal/parser"
)

// Cmd represents the detect command
var Cmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the bureau format of an XML report",
	Long:  `Detect which bureau schema an XML report uses, without running full extraction.`,
	Run:   detectFunc,
}

func detectFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Detect command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("--input is required")
	}

	content, err := fileutils.ReadTextFile(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading input file: %v", err)
	}

	detected, err := parser.DetectFormatString(content)
	if err != nil {
		root.Log.Fatalf("Error detecting format: %v", err)
	}
	fmt.Println(detected)
}

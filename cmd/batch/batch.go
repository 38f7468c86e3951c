// Package batch handles directory-level conversion commands
package batch

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fjacquet/bureau-json/cmd/common"
	"fjacquet/bureau-json/cmd/root"
	"fjacquet/bureau-json/internal/fileutils"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch convert multiple bureau XML reports to JSON",
	Long:  `Convert all XML report files in a directory to normalized JSON files.`,
	Run:   batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch convert command called")
	root.Log.Infof("Input directory: %s", root.SharedFlags.Input)
	root.Log.Infof("Output directory: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}

	count, err := Convert(root.SharedFlags.Input, root.SharedFlags.Output, root.SharedFlags.Validate, root.Log)
	if err != nil {
		root.Log.Fatalf("Error during batch conversion: %v", err)
	}
	root.Log.Infof("Batch conversion completed successfully! Converted %d files.", count)
}

// Convert converts every *.xml file in inputDir into a .json file in
// outputDir. Files that fail to convert are logged and skipped; the
// returned count covers successful conversions only.
func Convert(inputDir, outputDir string, validate bool, log *logrus.Logger) (int, error) {
	if err := fileutils.EnsureDir(outputDir); err != nil {
		return 0, err
	}

	files, err := fileutils.ListXMLFiles(inputDir)
	if err != nil {
		return 0, err
	}

	opts := common.Options{Validate: validate, Indent: true, IncludeRaw: true}
	if root.Cfg != nil {
		opts.Indent = root.Cfg.Output.Indent
		opts.IncludeRaw = root.Cfg.Output.IncludeRaw
	}

	var processed int
	for _, file := range files {
		outputFile := filepath.Join(outputDir, fileutils.ReplaceExtension(file, ".json"))
		if err := common.ProcessReportFile(file, outputFile, opts, log); err != nil {
			log.WithFields(logrus.Fields{
				"file":  file,
				"error": err,
			}).Warning("Failed to convert file, skipping")
			continue
		}
		processed++
	}

	log.WithField("count", processed).Info("Batch conversion completed")
	return processed, nil
}

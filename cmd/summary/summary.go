// Package summary handles the account summary command
package summary

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	cmdcommon "fjacquet/bureau-json/cmd/common"
	"fjacquet/bureau-json/cmd/root"
	"fjacquet/bureau-json/internal/aggregator"
	"fjacquet/bureau-json/internal/common"
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Derive account statistics from a bureau XML report",
	Long: `Normalize a report and print aggregate account statistics (credit
cards vs loans, active vs closed, overdue and balance totals). With
--output, the individual accounts are also written as CSV.`,
	Run: summaryFunc,
}

func summaryFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Summary command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("--input is required")
	}

	report, err := cmdcommon.ParseReportFile(root.SharedFlags.Input, root.SharedFlags.Validate, root.Log)
	if err != nil {
		root.Log.Fatalf("Error parsing report: %v", err)
	}

	stats := aggregator.GetAccountsSummary(report.CreditAccounts)
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		root.Log.Fatalf("Error rendering summary: %v", err)
	}
	fmt.Println(string(data))

	if root.SharedFlags.Output != "" {
		if err := common.WriteAccountsToCSV(report.CreditAccounts, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error writing accounts CSV: %v", err)
		}
		root.Log.Infof("Accounts written to %s", root.SharedFlags.Output)
	}
}

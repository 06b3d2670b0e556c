package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Electric-Bluefish-Productions-Inc/CNC-control-pendent-Kiosk-Mode-for-Surface-Pro3/internal/audit"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Display the provisioning audit trail",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyJSON bool

func init() {
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output events as JSON lines")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	auditLogger := audit.NewLogger(paths().StateDir)
	events, err := auditLogger.Events()
	if err != nil {
		return fmt.Errorf("failed to read audit log: %w", err)
	}

	if len(events) == 0 {
		logInfo("No provisioning events recorded")
		return nil
	}

	for _, e := range events {
		if historyJSON {
			data, err := json.Marshal(e)
			if err != nil {
				return fmt.Errorf("failed to marshal event: %w", err)
			}
			fmt.Println(string(data))
		} else {
			ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")
			if e.Details != "" {
				fmt.Printf("[%s] %-18s %s\n", ts, e.Type, e.Details)
			} else {
				fmt.Printf("[%s] %s\n", ts, e.Type)
			}
		}
	}

	return nil
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/liveocr/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent hover lookups",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of lookups to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.HistoryDB == "" {
		return fmt.Errorf("history is disabled, set history_db in %s", cfgFile)
	}

	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	lookups, err := store.Recent(historyLimit)
	if err != nil {
		return err
	}
	if len(lookups) == 0 {
		fmt.Println("no lookups recorded yet")
		return nil
	}
	for _, l := range lookups {
		fmt.Printf("%s  %s  (%d entries)\n", l.At.Format("2006-01-02 15:04"), l.Word, l.Matches)
	}
	return nil
}

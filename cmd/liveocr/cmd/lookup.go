package cmd

import (
	"fmt"

	gopinyin "github.com/mozillazg/go-pinyin"
	"github.com/spf13/cobra"

	"github.com/f3rmion/liveocr/internal/dict"
	"github.com/f3rmion/liveocr/internal/tui"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [word]",
	Short: "Look up a word in the dictionary",
	Long: `Look up a word and print every entry whose headword is a prefix of it,
longest first. Without arguments an interactive lookup UI opens.

Example:
  liveocr lookup 中国人
  liveocr lookup`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := dict.Load(cfg.Dictionary, cfg.CacheDir)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	if len(args) == 0 {
		return tui.Run(d)
	}

	query := args[0]
	entries := d.Matches(query)
	if len(entries) == 0 {
		// Not in the dictionary: fall back to bare readings so single
		// characters still get pinyin.
		printReadings(query)
		return nil
	}

	for _, e := range entries {
		head := e.Simplified
		if e.Traditional != "" && e.Traditional != e.Simplified {
			head += " (" + e.Traditional + ")"
		}
		fmt.Printf("%s  [%s]\n", head, e.PinyinString())
		for _, t := range e.Translations {
			fmt.Printf("  - %s\n", t)
		}
	}
	return nil
}

// printReadings prints tone-marked readings from the embedded pinyin data.
func printReadings(word string) {
	a := gopinyin.NewArgs()
	a.Style = gopinyin.Tone
	a.Heteronym = true

	readings := gopinyin.Pinyin(word, a)
	if len(readings) == 0 {
		fmt.Printf("no entries or readings for: %s\n", word)
		return
	}
	for i, ch := range []rune(word) {
		if i >= len(readings) {
			break
		}
		fmt.Printf("%c  %v\n", ch, readings[i])
	}
}

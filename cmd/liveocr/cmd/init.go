package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/liveocr/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(cfgFile); err == nil {
		return fmt.Errorf("config file already exists: %s", cfgFile)
	}
	if err := config.Save(cfgFile, config.Default()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", cfgFile)
	fmt.Println("set ocr.command to your OCR binary and place the dictionary at the configured path")
	return nil
}

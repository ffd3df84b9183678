package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/f3rmion/liveocr/internal/capture"
	"github.com/f3rmion/liveocr/internal/config"
	"github.com/f3rmion/liveocr/internal/dict"
	"github.com/f3rmion/liveocr/internal/history"
	"github.com/f3rmion/liveocr/internal/hotkey"
	"github.com/f3rmion/liveocr/internal/live"
	"github.com/f3rmion/liveocr/internal/ocr"
	"github.com/f3rmion/liveocr/internal/pointer"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Start the hover session",
	Long: `Start the live hover session. The configured hotkey toggles capture of
the monitor under the pointer; once OCR completes, hovering a character
prints its dictionary entries.

Requires an OCR command in the config file, for example:

  ocr:
    command: rapidocr
    args: ["--json"]`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.OCR.Command == "" {
		return fmt.Errorf("no ocr command configured, set ocr.command in %s", cfgFile)
	}

	d, err := dict.Load(cfg.Dictionary, cfg.CacheDir)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	src, err := pointer.System()
	if err != nil {
		return fmt.Errorf("pointer source: %w", err)
	}

	pipeline := &live.OcrPipeline{
		Capturer: capture.Screen{},
		Engine:   &ocr.CommandEngine{Path: cfg.OCR.Command, Args: cfg.OCR.Args},
	}

	opts := []live.Option{
		live.WithPointerPosition(func() (int, int, error) {
			pos, err := src.Position()
			return pos.X, pos.Y, err
		}),
	}
	if cfg.HistoryDB != "" {
		store, err := history.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()
		opts = append(opts, live.WithRecorder(store))
	}
	session := live.NewSession(d, pipeline, opts...)

	// Hotkey registration has to happen on the OS main thread.
	var runErr error
	hotkey.RunOnMainThread(func() {
		runErr = runSession(cfg, session, src)
	})
	return runErr
}

func runSession(cfg *config.Config, session *live.Session, src pointer.Source) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	binding, err := hotkey.Register(cfg.Hotkey.Modifiers, cfg.Hotkey.Key)
	if err != nil {
		return err
	}
	defer binding.Unregister()
	slog.Info("hotkey registered", "modifiers", cfg.Hotkey.Modifiers, "key", cfg.Hotkey.Key)

	inputs := make(chan live.Input, cfg.QueueSize)

	go func() {
		for range binding.Keydown() {
			live.Send(inputs, live.ToggleInput{})
		}
	}()

	interval := time.Duration(cfg.PollInterval) * time.Millisecond
	go func() {
		err := pointer.Poll(ctx, src, interval, func(pos pointer.Position) {
			live.Send(inputs, live.PointerInput{X: float64(pos.X), Y: float64(pos.Y)})
		})
		if err != nil && ctx.Err() == nil {
			slog.Error("pointer polling stopped", "err", err)
		}
	}()

	go printEvents(ctx, session)

	slog.Info("hover session running, press the hotkey to capture")
	err = session.Consume(ctx, inputs)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// printEvents writes session events to stdout for consumption by a wrapper UI
// or a terminal user.
func printEvents(ctx context.Context, session *live.Session) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-session.Events():
			switch ev := ev.(type) {
			case live.StateChanged:
				fmt.Printf("[%s]\n", ev.State)
			case live.OcrChanged:
				for _, text := range ev.Texts {
					fmt.Printf("  %s\n", text)
				}
			case live.DefinitionsChanged:
				for _, e := range ev.Entries {
					fmt.Printf("%s  %s  %v\n", e.Simplified, e.PinyinString(), e.Translations)
				}
			}
		}
	}
}

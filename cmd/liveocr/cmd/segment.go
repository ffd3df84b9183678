package cmd

import (
	"context"
	"fmt"
	"image"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/cobra"

	"github.com/f3rmion/liveocr/internal/ocr"
	"github.com/f3rmion/liveocr/internal/render"
	"github.com/f3rmion/liveocr/internal/segment"
)

var segmentOut string

var segmentCmd = &cobra.Command{
	Use:   "segment <image> <lines.json>",
	Short: "Segment detected lines into character boxes",
	Long: `Segment an image using pre-computed OCR line detections and write an
annotated copy with every character box outlined. Useful for tuning the
detector and inspecting segmentation.

The lines file is a JSON array of {"text": ..., "polygon": [[x,y], ...]}
objects, the same format the ocr command emits.`,
	Args: cobra.ExactArgs(2),
	RunE: runSegment,
}

func init() {
	segmentCmd.Flags().StringVarP(&segmentOut, "out", "o", "annotated.png", "output image path")
	rootCmd.AddCommand(segmentCmd)
}

func runSegment(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding image: %w", err)
	}

	engine, err := ocr.NewFileEngine(args[1])
	if err != nil {
		return err
	}
	lines, err := engine.Detect(context.Background(), img)
	if err != nil {
		return err
	}

	blocks := segment.Segment(img, lines)
	for _, b := range blocks {
		fmt.Printf("%s  (%d boxes)\n", b.Text, len(b.Boxes))
	}

	annotator, err := render.NewAnnotator(cfg.FontPath)
	if err != nil {
		return err
	}
	out, err := os.Create(segmentOut)
	if err != nil {
		return fmt.Errorf("creating output image: %w", err)
	}
	defer out.Close()
	if err := render.EncodePNG(out, annotator.Annotate(img, blocks)); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", segmentOut)
	return nil
}

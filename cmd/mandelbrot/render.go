package main

import (
	"fmt"
	"os"

	"github.com/reptilmo/mandelbrot/internal/geom"
	"github.com/reptilmo/mandelbrot/internal/imgenc"
	"github.com/reptilmo/mandelbrot/internal/pipeline"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <output> <WIDTHxHEIGHT> [<UL_RE,IM> <LR_RE,IM>]",
	Short: "Render a region of the complex plane to an image file",
	Long: `Render a region of the complex plane to an image file.

The plane rectangle is given either as two corner coordinates (upper left and
lower right, each RE,IM) or with --region. Pixel (0,0) of the output maps to
the upper-left corner.`,
	Example: `  mandelbrot render mandel.png 800x600 -1.20,0.35 -1,0.20
  mandelbrot render --region seahorse seahorse.png 1024x1024`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().String("region", "", "Named region instead of corner coordinates (see 'regions')")
	renderCmd.Flags().String("format", "", "Output format: png, bmp, tiff (default: from file extension)")
	renderCmd.Flags().Int("workers", 0, "Render goroutines (0 = number of CPUs)")
	// Coordinates start with '-' more often than not; stop flag parsing at
	// the first positional argument so they are not mistaken for flags.
	renderCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	outputPath := args[0]
	regionName, _ := cmd.Flags().GetString("region")
	formatStr, _ := cmd.Flags().GetString("format")
	workers, _ := cmd.Flags().GetInt("workers")

	bounds, err := parseBounds(args[1])
	if err != nil {
		return fmt.Errorf("parsing image size: %w", err)
	}

	var rect geom.Rect
	switch {
	case regionName != "":
		if len(args) != 2 {
			return fmt.Errorf("--region replaces the corner coordinate arguments")
		}
		region, err := geom.LookupRegion(regionName)
		if err != nil {
			return err
		}
		rect = region.Rect
	case len(args) == 4:
		ul, err := parseComplex(args[2])
		if err != nil {
			return fmt.Errorf("parsing upper left: %w", err)
		}
		lr, err := parseComplex(args[3])
		if err != nil {
			return fmt.Errorf("parsing lower right: %w", err)
		}
		rect = geom.Rect{UpperLeft: ul, LowerRight: lr}
	default:
		return fmt.Errorf("need both corner coordinates, or --region")
	}

	format := imgenc.FormatForPath(outputPath)
	if formatStr != "" {
		format, err = imgenc.ParseFormat(formatStr)
		if err != nil {
			return err
		}
	}

	result, err := pipeline.Run(pipeline.Options{
		Bounds:  bounds,
		Rect:    rect,
		Format:  format,
		Workers: workers,
	})
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Rendered %dx%d over (%g%+gi)..(%g%+gi)\n",
		result.Width, result.Height,
		real(rect.UpperLeft), imag(rect.UpperLeft),
		real(rect.LowerRight), imag(rect.LowerRight))
	fmt.Printf("Output: %s (%s, %d bytes)\n", outputPath, format, len(result.Data))

	return nil
}

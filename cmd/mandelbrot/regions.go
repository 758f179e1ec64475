package main

import (
	"fmt"

	"github.com/reptilmo/mandelbrot/internal/geom"
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List named regions of the Mandelbrot set",
	Args:  cobra.NoArgs,
	Run:   runRegions,
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) {
	for _, r := range geom.Regions() {
		fmt.Printf("%-16s %s\n", r.Name, r.Desc)
		fmt.Printf("%-16s %g,%g %g,%g\n", "",
			real(r.Rect.UpperLeft), imag(r.Rect.UpperLeft),
			real(r.Rect.LowerRight), imag(r.Rect.LowerRight))
	}
}

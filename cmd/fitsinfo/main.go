// Command fitsinfo inspects FITS files: header card listings and data
// statistics.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/robert-malhotra/go-fits/fits"
)

var (
	verbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	rootCmd = &cobra.Command{
		Use:   "fitsinfo",
		Short: "Inspect FITS files",
		Long: titleStyle.Render("fitsinfo") + commentStyle.Render(" - inspect FITS files") + `

Reads FITS (Flexible Image Transport System) files and reports their
header cards and data statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	headerCmd = &cobra.Command{
		Use:   "header <file>",
		Short: "List the header cards of a FITS file",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeader,
	}

	statsCmd = &cobra.Command{
		Use:   "stats <file>",
		Short: "Report shape and value statistics of the data array",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.AddCommand(headerCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func runHeader(cmd *cobra.Command, args []string) error {
	f, err := fits.Open(args[0])
	if err != nil {
		return err
	}

	cards := f.Header().Cards()
	logger.Debug("parsed header", "file", args[0], "cards", len(cards))

	for _, c := range cards {
		line := keywordStyle.Render(pad(c.Keyword(), 20))
		if !c.Value().IsUndefined() {
			line += " " + c.Value().String()
		}
		if comment, ok := c.Comment(); ok {
			line += " " + commentStyle.Render("/ "+comment)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	f, err := fits.Open(args[0])
	if err != nil {
		return err
	}

	d := f.Data()
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(args[0]))
	fmt.Fprintln(out, labelStyle.Render("bitpix"), d.Bitpix())
	fmt.Fprintln(out, labelStyle.Render("axes"), formatAxes(d.Axes()))
	fmt.Fprintln(out, labelStyle.Render("points"), d.Len())

	if d.Len() == 0 {
		return nil
	}

	min, max, sum := math.Inf(1), math.Inf(-1), 0.0
	it := d.Points()
	for it.Next() {
		v := it.Value()
		min = math.Min(min, v)
		max = math.Max(max, v)
		sum += v
	}
	if err := it.Err(); err != nil {
		if d.Bitpix() == 64 {
			fmt.Fprintln(out, warnStyle.Render("64-bit integer data: values not decodable"))
			return nil
		}
		return err
	}

	fmt.Fprintln(out, labelStyle.Render("min"), min)
	fmt.Fprintln(out, labelStyle.Render("max"), max)
	fmt.Fprintln(out, labelStyle.Render("mean"), sum/float64(d.Len()))
	return nil
}

func formatAxes(axes []int) string {
	if len(axes) == 0 {
		return "none"
	}
	parts := make([]string, len(axes))
	for i, a := range axes {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " x ")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mabhi256/gvasdiag/internal/gvas"
	"github.com/mabhi256/gvasdiag/internal/gvas/registry"
	"github.com/mabhi256/gvasdiag/utils"
	"github.com/spf13/cobra"
)

var statsVerbose bool

var statsCmd = &cobra.Command{
	Use:               "stats [sav-file]",
	Short:             "Report property-type counts and numeric distributions",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: utils.CompleteFilesByExtension([]string{".sav"}, false),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		if _, err := os.Stat(filename); os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", filename)
		}
		if ext := filepath.Ext(filename); ext != ".sav" {
			fmt.Printf("Warning: File extension '%s' is not '.sav', but proceeding anyway...\n", ext)
		}

		if statsVerbose {
			fmt.Fprintf(os.Stderr, "reading %s...\n", filename)
		}
		buf, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}

		start := time.Now()
		_, root, err := gvas.DecodeSaveFile(buf)
		decodeTime := time.Since(start)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", filename, err)
		}
		if statsVerbose {
			fmt.Fprintf(os.Stderr, "decoded in %s\n", utils.FormatDuration(decodeTime))
		}

		stats := registry.NewTypeStats()
		if statsVerbose {
			fmt.Fprintln(os.Stderr, "collecting type statistics...")
		}
		stats.Collect(root)
		printStats(stats, decodeTime)
		return nil
	},
}

func printStats(stats *registry.TypeStats, decodeTime time.Duration) {
	fmt.Println(utils.TitleStyle.Render("Property Type Distribution"))
	fmt.Println(utils.FormatKeyValue("Total scalar values", fmt.Sprintf("%d", stats.Total()), 24))
	fmt.Println(utils.FormatKeyValue("Decode time", utils.FormatDuration(decodeTime), 24))
	fmt.Println()

	kinds := stats.Kinds()
	if len(kinds) == 0 {
		fmt.Println(utils.MutedStyle.Render("(no scalar properties found)"))
		return
	}

	maxCount := stats.Count(kinds[0])
	for _, kind := range kinds {
		count := stats.Count(kind)
		var ratio float64
		if maxCount > 0 {
			ratio = float64(count) / float64(maxCount)
		}
		bar := utils.CreateProgressBarWithLabel(ratio, 48, utils.InfoColor, fmt.Sprintf("%-8s %d", kind, count))
		fmt.Println(bar)

		if mean := stats.Mean(kind); mean != 0 {
			fmt.Printf("  %s mean=%.2f variance=%.2f\n", utils.MutedStyle.Render("·"), mean, stats.Variance(kind))
		}
	}

	if stats.ArrayCount() > 0 {
		fmt.Println()
		fmt.Println(utils.TitleStyle.Render("Array Length Distribution"))
		min, max := stats.ArrayLengthMinMax()
		fmt.Println(utils.FormatKeyValue("Arrays", fmt.Sprintf("%d", stats.ArrayCount()), 24))
		fmt.Println(utils.FormatKeyValue("Length mean", fmt.Sprintf("%.2f", stats.ArrayLengthMean()), 24))
		fmt.Println(utils.FormatKeyValue("Length variance", fmt.Sprintf("%.2f", stats.ArrayLengthVariance()), 24))
		fmt.Println(utils.FormatKeyValue("Length min/max", fmt.Sprintf("%d / %d", min, max), 24))
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVarP(&statsVerbose, "verbose", "v", false, "write decode progress and timing to stderr")
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mabhi256/gvasdiag/internal/gvas"
	"github.com/mabhi256/gvasdiag/utils"
	"github.com/spf13/cobra"
)

var dumpVerbose bool

var dumpCmd = &cobra.Command{
	Use:               "dump [sav-file]",
	Short:             "Decode the full property tree and print it indented",
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

		if dumpVerbose {
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
		if dumpVerbose {
			fmt.Fprintf(os.Stderr, "decoded in %s\n", utils.FormatDuration(decodeTime))
		}

		dumpValue(root, 0)
		return nil
	},
}

func dumpValue(v *gvas.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.Kind {
	case gvas.KindMap:
		for _, entry := range v.Map {
			if entry.Value.Kind == gvas.KindScalar {
				fmt.Printf("%s%s: %s\n", indent, entry.Key, formatScalar(entry.Value.Scalar))
				continue
			}
			fmt.Printf("%s%s:\n", indent, entry.Key)
			dumpValue(entry.Value, depth+1)
		}
	case gvas.KindSeq:
		for i, elem := range v.Seq {
			if elem.Kind == gvas.KindScalar {
				fmt.Printf("%s[%d] %s\n", indent, i, formatScalar(elem.Scalar))
				continue
			}
			fmt.Printf("%s[%d]:\n", indent, i)
			dumpValue(elem, depth+1)
		}
	case gvas.KindScalar:
		fmt.Printf("%s%s\n", indent, formatScalar(v.Scalar))
	}
}

func formatScalar(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().BoolVarP(&dumpVerbose, "verbose", "v", false, "write decode progress and timing to stderr")
}

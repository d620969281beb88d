package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mabhi256/gvasdiag/internal/gvas"
	"github.com/mabhi256/gvasdiag/utils"
	"github.com/spf13/cobra"
)

var headerEncode bool

var headerCmd = &cobra.Command{
	Use:               "header [sav-file]",
	Short:             "Print the GVAS prologue: file type tag, versions, and custom version table",
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

		buf, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("reading %s: %w", filename, err)
		}

		h, err := gvas.DecodeHeader(gvas.NewCursor(buf))
		if err != nil {
			return fmt.Errorf("decoding header: %w", err)
		}

		printHeader(h, utils.MemorySize(len(buf)))

		if headerEncode {
			if err := verifyHeaderRoundTrip(h, buf[:h.ParsedLength]); err != nil {
				return err
			}
		}
		return nil
	},
}

// verifyHeaderRoundTrip re-serializes h with EncodeHeader and diffs the
// result byte-for-byte against the original prologue slice the cursor
// consumed to produce h.
func verifyHeaderRoundTrip(h *gvas.GvasHeader, original []byte) error {
	encoded, err := gvas.EncodeHeader(h)
	if err != nil {
		return fmt.Errorf("re-encoding header: %w", err)
	}

	fmt.Println()
	fmt.Println(utils.TitleStyle.Render("Round-trip check"))
	if bytes.Equal(encoded, original) {
		fmt.Println(utils.FormatKeyValue("Result", "match ("+fmt.Sprintf("%d", len(encoded))+" bytes)", 24))
		return nil
	}

	fmt.Println(utils.FormatKeyValue("Result", "MISMATCH", 24))
	fmt.Println(utils.FormatKeyValue("Original bytes", fmt.Sprintf("%d", len(original)), 24))
	fmt.Println(utils.FormatKeyValue("Encoded bytes", fmt.Sprintf("%d", len(encoded)), 24))
	for i := 0; i < len(original) && i < len(encoded); i++ {
		if original[i] != encoded[i] {
			return fmt.Errorf("header round-trip mismatch at byte %d: original 0x%02x, encoded 0x%02x", i, original[i], encoded[i])
		}
	}
	return fmt.Errorf("header round-trip mismatch: length %d != %d", len(original), len(encoded))
}

func printHeader(h *gvas.GvasHeader, fileSize utils.MemorySize) {
	fmt.Println(utils.TitleStyle.Render("GVAS Header"))
	fmt.Println(utils.FormatKeyValue("File type tag", fmt.Sprintf("0x%08x", uint32(h.FileTypeTag)), 24))
	fmt.Println(utils.FormatKeyValue("Save game version", fmt.Sprintf("%d", h.SaveGameFileVersion), 24))
	fmt.Println(utils.FormatKeyValue("Package UE4 version", fmt.Sprintf("%d", h.PackageFileUE4Version), 24))
	fmt.Println(utils.FormatKeyValue("Engine version", fmt.Sprintf("%d.%d.%d-%d %s",
		h.EngineVersion.Major, h.EngineVersion.Minor, h.EngineVersion.Patch,
		h.EngineVersion.ChangeList, h.EngineVersion.Branch), 24))
	fmt.Println(utils.FormatKeyValue("Custom version format", fmt.Sprintf("%d", h.CustomVersionFormat), 24))
	fmt.Println(utils.FormatKeyValue("Save game class", h.SaveGameClassName, 24))
	fmt.Println(utils.FormatKeyValue("Header length", fmt.Sprintf("%d bytes", h.ParsedLength), 24))
	fmt.Println(utils.FormatKeyValue("File size", fileSize.String(), 24))

	if len(h.CustomVersions) > 0 {
		fmt.Println()
		fmt.Println(utils.InfoStyle.Render(fmt.Sprintf("Custom versions (%d):", len(h.CustomVersions))))
		for _, cv := range h.CustomVersions {
			fmt.Printf("  %s  v%d\n", cv.Key.String(), cv.Version)
		}
	}
}

func init() {
	rootCmd.AddCommand(headerCmd)

	headerCmd.Flags().BoolVar(&headerEncode, "encode", false, "re-serialize the decoded header and diff it against the original prologue bytes")
}

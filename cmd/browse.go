package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mabhi256/gvasdiag/internal/browsetui"
	"github.com/mabhi256/gvasdiag/internal/gvas"
	"github.com/mabhi256/gvasdiag/utils"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:               "browse [sav-file]",
	Short:             "Open an interactive browser over the decoded property tree",
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

		header, root, err := gvas.DecodeSaveFile(buf)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", filename, err)
		}

		model := browsetui.New(filepath.Base(filename), header, root)
		p := tea.NewProgram(model, tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/zkvm-tools/elfembed/internal/embedder"
	"github.com/zkvm-tools/elfembed/internal/ui"
	"github.com/zkvm-tools/elfembed/pkg/log"
)

// rootCmd represents the base command. The tool has a single flagless
// operation, so the root command carries it directly instead of dispatching
// to subcommands.
var rootCmd = &cobra.Command{
	Use:   "elfembed <input-elf> <output-rs>",
	Short: "Embed a guest ELF binary into Rust source constants",
	Long: `elfembed reads a compiled guest ELF binary and writes a Rust source file
declaring its bytes as the HASH_ELF constant, alongside the HASH_ID and
HASH_PATH placeholders filled in by a later build stage.

The output is deterministic: the same input always produces the same file.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEmbed(args[0], args[1]); err != nil {
			ui.PrintError("embed", err.Error())
			os.Exit(1)
		}
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := log.Init("", "info"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runEmbed performs the embed operation and reports the result.
//
// Returns:
//   - error: An error if the input cannot be read or the output cannot be written.
func runEmbed(inputPath, outputPath string) error {
	slog.Debug("embedding guest binary", "input", inputPath, "output", outputPath)

	n, err := embedder.Embed(inputPath, outputPath)
	if err != nil {
		return err
	}

	ui.PrintSuccess("embed", fmt.Sprintf("%s (%d bytes) -> %s", filepath.Base(inputPath), n, outputPath))
	return nil
}

package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEmbed(t *testing.T) {
	tempDir := t.TempDir()
	inputPath := filepath.Join(tempDir, "guest.elf")
	outputPath := filepath.Join(tempDir, "methods.rs")

	if err := os.WriteFile(inputPath, []byte{0, 255, 16}, 0644); err != nil {
		t.Fatal(err)
	}

	if err := runEmbed(inputPath, outputPath); err != nil {
		t.Fatalf("runEmbed failed: %v", err)
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !strings.Contains(string(out), "&[0,255,16];") {
		t.Errorf("unexpected output: %q", string(out))
	}
}

func TestRunEmbedMissingInput(t *testing.T) {
	tempDir := t.TempDir()

	err := runEmbed(filepath.Join(tempDir, "missing"), filepath.Join(tempDir, "methods.rs"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestRootRejectsWrongArgCount(t *testing.T) {
	rootCmd.SetOut(io.Discard)
	rootCmd.SetErr(io.Discard)

	for _, args := range [][]string{{}, {"one"}, {"one", "two", "three"}} {
		rootCmd.SetArgs(args)
		if err := rootCmd.Execute(); err == nil {
			t.Errorf("expected argument error for %d args", len(args))
		}
	}
}

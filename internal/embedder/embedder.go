package embedder

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/zkvm-tools/elfembed/internal/templates"
)

// methodData holds the three slots of the generated source file.
// ID and Path stay empty: the image ID and guest path are supplied by a
// later stage of the build, never by this tool.
type methodData struct {
	Elf  string
	ID   string
	Path string
}

// Embed reads the guest binary at inputPath and writes a Rust source file
// to outputPath declaring its contents as the HASH_ELF byte-array constant.
// The output is overwritten if it already exists. The input is read before
// the output is touched, so a read failure leaves outputPath unmodified.
//
// Returns:
//   - int: The number of bytes embedded.
//   - error: An error if the input cannot be read or the output cannot be written.
func Embed(inputPath, outputPath string) (int, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	src, err := Render(data)
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(outputPath, []byte(src), 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	return len(data), nil
}

// Render produces the generated source text for the given binary contents.
// The same input always yields the same text.
func Render(data []byte) (string, error) {
	tmplContent, err := templates.Get("methods.rs.tmpl")
	if err != nil {
		return "", err
	}

	t, err := template.New("methods").Parse(tmplContent)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, methodData{Elf: formatBytes(data)}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatBytes renders each byte as its decimal string, joined with single
// commas. No padding, no trailing separator, no surrounding whitespace.
func formatBytes(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 4)
	for i, v := range data {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(v)))
	}
	return b.String()
}

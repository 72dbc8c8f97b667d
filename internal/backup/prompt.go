package backup

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptRoot asks for the installation root on out and reads one line
// from in. An empty answer selects def; anything else is used verbatim.
func PromptRoot(in io.Reader, out io.Writer, def string) (string, error) {
	fmt.Fprintf(out, "Installation root [%s]: ", def)

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	answer := strings.TrimSpace(line)
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

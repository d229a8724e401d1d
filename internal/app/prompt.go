package app

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptText is shown when no input path was configured.
const PromptText = "Enter your filename: \n"

// PromptPath asks for a file path on out and reads one line from in.
func PromptPath(in io.Reader, out io.Writer) (string, error) {
	if _, err := io.WriteString(out, PromptText); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		if err == io.EOF {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("read filename: %w", err)
	}
	path := strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(path) == "" {
		return "", ErrNoInput
	}
	return path, nil
}

package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// readLines returns the non-blank lines of every input, in order.
// "-" reads from stdin.
func readLines(inputs []string, stdin io.Reader) ([]string, error) {
	lines := []string{}
	for _, input := range inputs {
		var err error
		if input == "-" {
			lines, err = scanLines(stdin, lines)
		} else {
			lines, err = readFile(input, lines)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read '%s'", input)
		}
	}
	return lines, nil
}

func readFile(filepath string, lines []string) ([]string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return scanLines(file, lines)
}

func scanLines(r io.Reader, lines []string) ([]string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

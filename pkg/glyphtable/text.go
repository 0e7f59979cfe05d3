package glyphtable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseText reads equivalence groups from the plain text format: one group
// per line as comma-separated hexadecimal code points. Blank lines and lines
// starting with '#' are ignored, as is anything after a '#' on a data line.
//
// Malformed codes are skipped individually and a line without any valid
// code is dropped. Only read failures are returned as errors.
func ParseText(r io.Reader) ([][]rune, error) {
	var groups [][]rune

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = strings.TrimSpace(line[:i])
		}
		if line == "" {
			continue
		}

		if group := parseLine(line); len(group) > 0 {
			groups = append(groups, group)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read char codes: %w", err)
	}

	return groups, nil
}

func parseLine(line string) []rune {
	codes := strings.Split(line, ",")
	group := make([]rune, 0, len(codes))
	for _, code := range codes {
		r, ok := parseCode(code)
		if !ok {
			continue
		}
		group = append(group, r)
	}

	return group
}

func parseCode(code string) (rune, bool) {
	code = strings.TrimSpace(code)
	code = strings.TrimPrefix(strings.TrimPrefix(code, "U+"), "u+")
	if code == "" {
		return 0, false
	}

	v, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		return 0, false
	}

	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, false
	}

	return r, true
}

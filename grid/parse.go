package grid

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrParse wraps malformed tokens encountered while reading a text map.
var ErrParse = errors.New("grid: malformed map")

// Parse reads a plain-text occupancy map: one row per line, cells as
// whitespace-separated integer codes (CodeFree, CodeObstacle, CodeStart,
// CodeGoal). Blank lines are skipped. The map must be rectangular and
// contain exactly one start and one goal code.
func Parse(r io.Reader) (*Grid, error) {
	var codes [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fieldsOf := strings.Fields(sc.Text())
		if len(fieldsOf) == 0 {
			continue
		}
		row := make([]int, 0, len(fieldsOf))
		for _, tok := range fieldsOf {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrParse, line, tok)
			}
			row = append(row, v)
		}
		codes = append(codes, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return New(codes)
}

// LoadFile reads and parses the text map at path.
func LoadFile(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open map: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

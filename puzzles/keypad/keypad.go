package keypad

import (
	"bytes"
	"fmt"

	"github.com/hupe1980/puzzlekit"
	"github.com/hupe1980/puzzlekit/internal/runner"
)

// Chain lengths of the two parts: the door robot behind two or twenty-five
// directional robots.
const (
	ShortChain = 3
	LongChain  = 26
)

// Code is a door code: digits followed by Activate.
type Code string

// Number returns the numeric part of the code, ignoring leading zeros.
func (c Code) Number() int {
	n := 0
	for i := range len(c) - 1 {
		n = n*10 + int(c[i]-'0')
	}
	return n
}

// Parse reads one code per line.
func Parse(input []byte) ([]Code, error) {
	var codes []Code
	for i, line := range bytes.Split(bytes.TrimSpace(input), []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if len(line) < 2 || line[len(line)-1] != Activate {
			return nil, puzzlekit.NewParseError(i+1, len(line), fmt.Errorf("code %q does not end in %c", line, Activate))
		}
		for j, b := range line[:len(line)-1] {
			if b < '0' || b > '9' {
				return nil, puzzlekit.NewParseError(i+1, j+1, fmt.Errorf("unexpected %q", b))
			}
		}
		codes = append(codes, Code(line))
	}
	if len(codes) == 0 {
		return nil, puzzlekit.Malformed("no codes")
	}
	return codes, nil
}

// Complexity sums the press count of every code times its numeric part.
func Complexity(codes []Code, presses func(Code) (int, error)) (int, error) {
	sum := 0
	for _, c := range codes {
		n, err := presses(c)
		if err != nil {
			return 0, err
		}
		sum += n * c.Number()
	}
	return sum, nil
}

// Solve registers the day 21 steps.
func Solve(r *runner.Runner, input []byte) error {
	codes, err := runner.Prep(r, "Parse", func() ([]Code, error) { return Parse(input) })
	if err != nil {
		return err
	}

	if _, err := runner.Part(r, "Part 1", func() (int, error) {
		return Complexity(codes, func(c Code) (int, error) {
			n, stats, err := Presses(c, ShortChain)
			r.Track(stats)
			return n, err
		})
	}); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 2", func() (int, error) { return planned(r, codes, LongChain) }); err != nil {
		return err
	}

	if err := r.SetTail("Parse"); err != nil {
		return err
	}
	if _, err := runner.Part(r, "Part 1 (Planner)", func() (int, error) { return planned(r, codes, ShortChain) }); err != nil {
		return err
	}

	r.Info("Codes", len(codes))
	return nil
}

func planned(r *runner.Runner, codes []Code, robots int) (int, error) {
	p, err := NewPlanner(robots)
	if err != nil {
		return 0, err
	}
	r.Track(p.Stats())
	return Complexity(codes, func(c Code) (int, error) { return p.Presses(c), nil })
}

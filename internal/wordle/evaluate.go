package wordle

import (
	"fmt"
	"slices"
	"strings"
)

// Policy selects how repeated letters are scored.
type Policy uint8

const (
	// Membership marks a letter present whenever it occurs anywhere in the
	// solution, so one solution letter may back several verdicts.
	Membership Policy = iota
	// Multiplicity is the two-pass rule: a letter is never marked more often
	// than it occurs in the solution.
	Multiplicity
)

func (p Policy) String() string {
	if p == Multiplicity {
		return "multiplicity"
	}
	return "membership"
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "membership":
		return Membership, nil
	case "multiplicity", "canonical":
		return Multiplicity, nil
	}
	return Membership, fmt.Errorf("unknown policy %q", s)
}

type Evaluator struct {
	Policy Policy
}

// Evaluate scores guess against solution with the Membership policy.
// Callers must ensure both words have the same length.
func Evaluate(guess, solution string) Result {
	return Evaluator{}.Evaluate(guess, solution)
}

func (e Evaluator) Evaluate(guess, solution string) Result {
	g := []rune(strings.ToLower(guess))
	s := []rune(strings.ToLower(solution))
	if e.Policy == Multiplicity {
		return multiplicity(g, s)
	}
	return membership(g, s)
}

func membership(guess, solution []rune) Result {
	res := make(Result, len(guess))
	for i, c := range guess {
		v := Misplaced
		switch {
		case !slices.Contains(solution, c):
			v = Absent
		case i < len(solution) && solution[i] == c:
			v = Correct
		}
		res[i] = Letter{Char: c, Verdict: v}
	}
	return res
}

func multiplicity(guess, solution []rune) Result {
	res := make(Result, len(guess))
	remaining := make(map[rune]int, len(solution))

	for i, c := range guess {
		res[i] = Letter{Char: c, Verdict: Absent}
		if i < len(solution) && solution[i] == c {
			res[i].Verdict = Correct
		}
	}
	for i, c := range solution {
		if i >= len(guess) || res[i].Verdict != Correct {
			remaining[c]++
		}
	}
	for i, c := range guess {
		if res[i].Verdict == Correct {
			continue
		}
		if remaining[c] > 0 {
			res[i].Verdict = Misplaced
			remaining[c]--
		}
	}
	return res
}

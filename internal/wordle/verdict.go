package wordle

// Verdict classifies one guessed letter against the solution.
type Verdict uint8

const (
	Absent Verdict = iota
	Misplaced
	Correct
)

func (v Verdict) String() string {
	switch v {
	case Absent:
		return "absent"
	case Misplaced:
		return "misplaced"
	case Correct:
		return "correct"
	}
	return "unknown"
}

// Letter is a guessed character paired with its verdict.
type Letter struct {
	Char    rune
	Verdict Verdict
}

// Result holds one Letter per guessed position, in guess order.
type Result []Letter

// Solved reports whether every position is Correct.
func (r Result) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, l := range r {
		if l.Verdict != Correct {
			return false
		}
	}
	return true
}

func (r Result) Word() string {
	rs := make([]rune, len(r))
	for i, l := range r {
		rs[i] = l.Char
	}
	return string(rs)
}

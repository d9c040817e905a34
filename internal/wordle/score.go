package wordle

// Score tracks the best (lowest) winning try count across replays.
// It is a plain value: Record returns the updated copy.
type Score struct {
	Best   int
	Rounds int
	Wins   int
}

// Record accounts a finished round. tries <= 0 records a round that was
// not won.
func (s Score) Record(tries int) Score {
	s.Rounds++
	if tries <= 0 {
		return s
	}
	s.Wins++
	if s.Best == 0 || tries < s.Best {
		s.Best = tries
	}
	return s
}

// Improves reports whether a win in tries would set a new best.
func (s Score) Improves(tries int) bool {
	return tries > 0 && (s.Best == 0 || tries < s.Best)
}

package cpfp

import (
	"errors"
)

// ErrNoData signals that a summary was requested before any non-empty block
// was folded in.
var ErrNoData = errors.New("no non-empty blocks in range")

type (
	// Aggregate accumulates per-block stats across a scan. The zero value is
	// ready to use; it is a plain value meant to be owned by the folding
	// loop, not shared.
	Aggregate struct {
		Blocks             int
		TxSum              int
		ChildSum           int
		ParentSum          int
		CandidateSum       int
		CandidateParentSum int

		MinChildPercent  float64
		MaxChildPercent  float64
		MinParentPercent float64
		MaxParentPercent float64
	}

	// Summary is the derived percentage view of an Aggregate.
	Summary struct {
		Blocks int

		AvgChildPercent  float64
		AvgParentPercent float64
		MinChildPercent  float64
		MaxChildPercent  float64
		MinParentPercent float64
		MaxParentPercent float64

		AvgCandidatePercent       float64
		AvgCandidateParentPercent float64
		// CandidateParentDefined reports whether AvgCandidateParentPercent
		// carries a value: it is undefined until at least one candidate was
		// seen.
		CandidateParentDefined bool
	}
)

// Add folds one non-empty block into the aggregate.
func (a *Aggregate) Add(s BlockStats) {
	childPercent := s.ChildPercent()
	parentPercent := s.ParentPercent()

	if a.Blocks == 0 {
		a.MinChildPercent, a.MaxChildPercent = childPercent, childPercent
		a.MinParentPercent, a.MaxParentPercent = parentPercent, parentPercent
	} else {
		a.MinChildPercent = min(a.MinChildPercent, childPercent)
		a.MaxChildPercent = max(a.MaxChildPercent, childPercent)
		a.MinParentPercent = min(a.MinParentPercent, parentPercent)
		a.MaxParentPercent = max(a.MaxParentPercent, parentPercent)
	}

	a.Blocks++
	a.TxSum += s.TxCount
	a.ChildSum += s.ChildCount
	a.ParentSum += s.ParentCount
	a.CandidateSum += s.CandidateCount
	a.CandidateParentSum += s.CandidateParentCount
}

// Summarize derives the percentage summary, failing with ErrNoData when
// nothing was folded in.
func (a *Aggregate) Summarize() (Summary, error) {
	if a.Blocks == 0 || a.TxSum == 0 {
		return Summary{}, ErrNoData
	}

	s := Summary{
		Blocks:              a.Blocks,
		AvgChildPercent:     percent(a.ChildSum, a.TxSum),
		AvgParentPercent:    percent(a.ParentSum, a.TxSum),
		MinChildPercent:     a.MinChildPercent,
		MaxChildPercent:     a.MaxChildPercent,
		MinParentPercent:    a.MinParentPercent,
		MaxParentPercent:    a.MaxParentPercent,
		AvgCandidatePercent: percent(a.CandidateSum, a.TxSum),
	}
	if a.CandidateSum > 0 {
		s.AvgCandidateParentPercent = percent(a.CandidateParentSum, a.CandidateSum)
		s.CandidateParentDefined = true
	}
	return s, nil
}

func percent(part, whole int) float64 {
	return float64(part) / float64(whole) * 100
}

// Package cpfp counts child-pays-for-parent transaction chains inside
// individual blocks.
//
// The counters track same-block ancestor/descendant relationships only. They
// do not attempt to determine whether a child actually incentivized the
// inclusion of its parents. The "fee estimation candidate" metric carries the
// same simplification: a candidate is any transaction without an in-block
// ancestor.
package cpfp

type (
	// TxInput is one input of a transaction. A coinbase input carries no
	// previous transaction reference.
	TxInput struct {
		PrevTxID string
	}

	// Transaction is the analyzer's view of one block transaction.
	Transaction struct {
		TxID   string
		Inputs []TxInput
	}

	// BlockStats holds the per-block relationship counts. The count methods
	// assume TxCount came from a non-empty analyzed block.
	BlockStats struct {
		Height               uint64
		TxCount              int
		ChildCount           int
		ParentCount          int
		CandidateCount       int
		CandidateParentCount int
	}
)

// Coinbase reports whether the input creates new value instead of spending a
// previous output.
func (in TxInput) Coinbase() bool {
	return in.PrevTxID == ""
}

// ChildPercent returns the share of block transactions with an ancestor in
// the same block, in percent.
func (s BlockStats) ChildPercent() float64 {
	if s.TxCount == 0 {
		return 0
	}
	return float64(s.ChildCount) / float64(s.TxCount) * 100
}

// ParentPercent returns the share of block transactions with a descendant in
// the same block, in percent.
func (s BlockStats) ParentPercent() float64 {
	if s.TxCount == 0 {
		return 0
	}
	return float64(s.ParentCount) / float64(s.TxCount) * 100
}

// AnalyzeBlock counts the same-block CPFP relationships over a block's
// transactions. A transaction spending an output of another transaction in
// the block is a child; the referenced transaction is a parent; transactions
// that are not children are fee estimation candidates. A coinbase-only block
// has no economic activity, so the second return is false and the stats must
// be skipped rather than folded in as zeros.
func AnalyzeBlock(height uint64, txs []Transaction) (BlockStats, bool) {
	txids := make(map[string]struct{}, len(txs))
	for _, tx := range txs {
		txids[tx.TxID] = struct{}{}
	}
	if len(txids) < 2 {
		return BlockStats{}, false
	}

	childCount := 0
	parents := make(map[string]struct{})
	candidates := make(map[string]struct{})
	for _, tx := range txs {
		child := false
		for _, in := range tx.Inputs {
			if in.Coinbase() {
				continue
			}
			if _, inBlock := txids[in.PrevTxID]; !inBlock {
				continue
			}
			parents[in.PrevTxID] = struct{}{}
			// Count the child once even when several inputs spend
			// in-block outputs.
			if !child {
				child = true
				childCount++
			}
		}
		if !child {
			candidates[tx.TxID] = struct{}{}
		}
	}

	candidateParentCount := 0
	for txid := range parents {
		if _, isCandidate := candidates[txid]; isCandidate {
			candidateParentCount++
		}
	}

	return BlockStats{
		Height:               height,
		TxCount:              len(txids),
		ChildCount:           childCount,
		ParentCount:          len(parents),
		CandidateCount:       len(candidates),
		CandidateParentCount: candidateParentCount,
	}, true
}

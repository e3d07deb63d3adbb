package bitcoin

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/cpfp-survey/internal/cpfp"
	"github.com/goodnatureofminers/cpfp-survey/pkg/safe"
)

// InlineSource fetches a block's transactions with inline input detail in a
// single verbosity-2 getblock call. This is the cheaper strategy for full
// blocks and the default.
type InlineSource struct {
	rpc BlockRPC
}

// NewInlineSource creates an InlineSource.
func NewInlineSource(rpc BlockRPC) *InlineSource {
	return &InlineSource{rpc: rpc}
}

// FetchBlockTxs retrieves the transaction list for one height.
func (s *InlineSource) FetchBlockTxs(ctx context.Context, height uint64) ([]cpfp.Transaction, error) {
	hash, err := blockHashAt(ctx, s.rpc, height)
	if err != nil {
		return nil, err
	}

	block, err := s.rpc.GetBlockVerboseTx(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	txs := make([]cpfp.Transaction, 0, len(block.Tx))
	for _, tx := range block.Tx {
		txs = append(txs, transactionFromRaw(tx))
	}
	return txs, nil
}

// PerTxSource fetches a block's transaction id list with a verbosity-1
// getblock call and resolves every transaction through its own
// getrawtransaction call. It needs a node with txindex enabled, but keeps
// individual responses small.
type PerTxSource struct {
	rpc BlockRPC
}

// NewPerTxSource creates a PerTxSource.
func NewPerTxSource(rpc BlockRPC) *PerTxSource {
	return &PerTxSource{rpc: rpc}
}

// FetchBlockTxs retrieves the transaction list for one height, preserving
// block order.
func (s *PerTxSource) FetchBlockTxs(ctx context.Context, height uint64) ([]cpfp.Transaction, error) {
	hash, err := blockHashAt(ctx, s.rpc, height)
	if err != nil {
		return nil, err
	}

	block, err := s.rpc.GetBlockVerbose(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}

	txs := make([]cpfp.Transaction, 0, len(block.Tx))
	for _, txid := range block.Tx {
		txHash, err := chainhash.NewHashFromStr(txid)
		if err != nil {
			return nil, fmt.Errorf("parse txid %s in block %d: %w", txid, height, err)
		}
		raw, err := s.rpc.GetRawTransactionVerbose(ctx, txHash)
		if err != nil {
			return nil, fmt.Errorf("get transaction %s: %w", txid, err)
		}
		txs = append(txs, transactionFromRaw(*raw))
	}
	return txs, nil
}

func blockHashAt(ctx context.Context, rpc BlockRPC, height uint64) (*chainhash.Hash, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height %d exceeds rpc range: %w", height, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := rpc.GetBlockHash(ctx, h)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	return hash, nil
}

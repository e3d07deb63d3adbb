package bitcoin

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the subset of the btcd rpcclient surface the survey
	// calls. *rpcclient.Client satisfies it.
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetBlockVerboseTx(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseTxResult, error)
		GetRawTransactionVerbose(txHash *chainhash.Hash) (*btcjson.TxRawResult, error)
	}

	// BlockRPC is the context-aware client the block sources fetch through.
	BlockRPC interface {
		GetBlockHash(ctx context.Context, height int64) (*chainhash.Hash, error)
		GetBlockVerbose(ctx context.Context, hash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetBlockVerboseTx(ctx context.Context, hash *chainhash.Hash) (*btcjson.GetBlockVerboseTxResult, error)
		GetRawTransactionVerbose(ctx context.Context, txid *chainhash.Hash) (*btcjson.TxRawResult, error)
	}

	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveWarmupRetry(operation string)
	}
)

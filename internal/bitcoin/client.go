package bitcoin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/cpfp-survey/internal/clock"
)

// ErrNodeUnavailable reports that the node kept answering RPC-in-warmup
// until the retry budget ran out.
var ErrNodeUnavailable = errors.New("node unavailable")

// Client wraps the node RPC handle with context awareness, client-side rate
// limiting, metrics and a bounded warmup retry. Every retry goes through the
// same underlying handle.
type Client struct {
	node    NodeClient
	metrics RPCMetrics
	limiter ratelimit.Limiter
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error

	maxAttempts int
	minBackoff  time.Duration
	maxBackoff  time.Duration
}

// NewClient constructs an instrumented Client. A non-positive rps disables
// client-side rate limiting.
func NewClient(node NodeClient, metrics RPCMetrics, rps int, logger *zap.Logger) (*Client, error) {
	if node == nil {
		return nil, errors.New("node client is required")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}

	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}

	return &Client{
		node:        node,
		metrics:     metrics,
		limiter:     limiter,
		logger:      logger,
		sleep:       clock.SleepWithContext,
		maxAttempts: warmupMaxAttempts,
		minBackoff:  warmupMinBackoff,
		maxBackoff:  warmupMaxBackoff,
	}, nil
}

// GetBlockCount returns the node's current tip height.
func (c *Client) GetBlockCount(ctx context.Context) (int64, error) {
	var count int64
	err := c.do(ctx, "get_block_count", func() error {
		var err error
		count, err = c.node.GetBlockCount()
		return err
	})
	return count, err
}

// GetBlockHash returns the block hash for a height.
func (c *Client) GetBlockHash(ctx context.Context, height int64) (*chainhash.Hash, error) {
	var hash *chainhash.Hash
	err := c.do(ctx, "get_block_hash", func() error {
		var err error
		hash, err = c.node.GetBlockHash(height)
		return err
	})
	return hash, err
}

// GetBlockVerbose returns a block with bare transaction ids.
func (c *Client) GetBlockVerbose(ctx context.Context, hash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error) {
	var res *btcjson.GetBlockVerboseResult
	err := c.do(ctx, "get_block_verbose", func() error {
		var err error
		res, err = c.node.GetBlockVerbose(hash)
		return err
	})
	return res, err
}

// GetBlockVerboseTx returns a block with inline transaction detail.
func (c *Client) GetBlockVerboseTx(ctx context.Context, hash *chainhash.Hash) (*btcjson.GetBlockVerboseTxResult, error) {
	var res *btcjson.GetBlockVerboseTxResult
	err := c.do(ctx, "get_block_verbose_tx", func() error {
		var err error
		res, err = c.node.GetBlockVerboseTx(hash)
		return err
	})
	return res, err
}

// GetRawTransactionVerbose returns one transaction with its inputs.
func (c *Client) GetRawTransactionVerbose(ctx context.Context, txid *chainhash.Hash) (*btcjson.TxRawResult, error) {
	var res *btcjson.TxRawResult
	err := c.do(ctx, "get_raw_transaction_verbose", func() error {
		var err error
		res, err = c.node.GetRawTransactionVerbose(txid)
		return err
	})
	return res, err
}

func (c *Client) do(ctx context.Context, operation string, call func() error) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.limiter.Take()

		started := time.Now()
		err := call()
		c.metrics.Observe(operation, err, started)
		if err == nil {
			return nil
		}
		if !isWarmingUp(err) {
			return err
		}
		if attempt >= c.maxAttempts {
			return fmt.Errorf("%s: node still warming up after %d attempts: %w", operation, attempt, ErrNodeUnavailable)
		}

		c.metrics.ObserveWarmupRetry(operation)
		backoff := clock.JitterBetween(c.minBackoff, c.maxBackoff)
		c.logger.Warn("node warming up, retrying",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff))
		if sleepErr := c.sleep(ctx, backoff); sleepErr != nil {
			return sleepErr
		}
	}
}

// isWarmingUp matches bitcoind's RPC-in-warmup startup error.
func isWarmingUp(err error) bool {
	var rpcErr *btcjson.RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCInWarmup
}

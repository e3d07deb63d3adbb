// Package bitcoin adapts the node's JSON-RPC surface to the analyzer.
package bitcoin

import (
	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/cpfp-survey/internal/cpfp"
)

// transactionFromRaw maps a verbose transaction result into the analyzer's
// shape. Coinbase inputs become the empty coinbase marker.
func transactionFromRaw(tx btcjson.TxRawResult) cpfp.Transaction {
	inputs := make([]cpfp.TxInput, 0, len(tx.Vin))
	for _, vin := range tx.Vin {
		if vin.IsCoinBase() {
			inputs = append(inputs, cpfp.TxInput{})
			continue
		}
		inputs = append(inputs, cpfp.TxInput{PrevTxID: vin.Txid})
	}
	return cpfp.Transaction{TxID: tx.Txid, Inputs: inputs}
}

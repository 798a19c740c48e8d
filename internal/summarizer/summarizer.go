// Package summarizer aggregates the transactions of a block by sender and
// receiver address.
package summarizer

import (
	"github.com/blocklens/blocksummary/internal/common"
)

// ContractCreationKey is the receiver key used for transactions without a
// `to` address (contract creations).
const ContractCreationKey = "null"

type BlockSummary struct {
	BlockNumber       uint64         `json:"block_number"`
	BlockHash         string         `json:"block_hash"`
	TotalTransactions int            `json:"total_transactions"`
	BySender          map[string]int `json:"by_sender"`
	ByReceiver        map[string]int `json:"by_receiver"`
}

// Summarize counts the block's transactions per sender and per receiver.
// Addresses are counted verbatim, without case normalization.
func Summarize(block *common.Block) (*BlockSummary, error) {
	if err := block.Validate(); err != nil {
		return nil, err
	}

	number, err := common.ParseBlockNumber(block.Number)
	if err != nil {
		return nil, err
	}

	bySender := make(map[string]int)
	byReceiver := make(map[string]int)

	for _, tx := range block.Transactions {
		if tx.From != "" {
			bySender[tx.From]++
		}

		if tx.To == nil {
			byReceiver[ContractCreationKey]++
		} else {
			byReceiver[*tx.To]++
		}
	}

	return &BlockSummary{
		BlockNumber:       number,
		BlockHash:         block.Hash,
		TotalTransactions: len(block.Transactions),
		BySender:          bySender,
		ByReceiver:        byReceiver,
	}, nil
}

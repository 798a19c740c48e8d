package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedBlock = errors.New("malformed block payload")

// Transaction is the subset of an Ethereum transaction object the service
// aggregates on. To is nil for contract creation transactions.
type Transaction struct {
	From string  `json:"from"`
	To   *string `json:"to"`
}

// Block is the typed boundary for the eth_getBlockByNumber result. Payloads
// are validated here once instead of being picked apart field by field later.
type Block struct {
	Number       string        `json:"number"`
	Hash         string        `json:"hash"`
	Transactions []Transaction `json:"transactions"`
}

func (b *Block) Validate() error {
	if b.Number == "" {
		return fmt.Errorf("%w: missing number field", ErrMalformedBlock)
	}
	if b.Hash == "" {
		return fmt.Errorf("%w: missing hash field", ErrMalformedBlock)
	}
	if _, err := ParseBlockNumber(b.Number); err != nil {
		return err
	}
	return nil
}

// ParseBlockNumber parses a hexadecimal block number, accepting the 0x prefix.
func ParseBlockNumber(s string) (uint64, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	n, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid block number %q", ErrMalformedBlock, s)
	}
	return n, nil
}

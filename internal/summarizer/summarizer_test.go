package summarizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blocklens/blocksummary/internal/common"
)

func strPtr(s string) *string {
	return &s
}

func TestSummarize(t *testing.T) {
	block := &common.Block{
		Number: "0xa",
		Hash:   "0xabc",
		Transactions: []common.Transaction{
			{From: "0x1", To: strPtr("0x2")},
			{From: "0x1", To: nil},
		},
	}

	summary, err := Summarize(block)
	assert.NoError(t, err)
	assert.Equal(t, uint64(10), summary.BlockNumber)
	assert.Equal(t, "0xabc", summary.BlockHash)
	assert.Equal(t, 2, summary.TotalTransactions)
	assert.Equal(t, map[string]int{"0x1": 2}, summary.BySender)
	assert.Equal(t, map[string]int{"0x2": 1, "null": 1}, summary.ByReceiver)
}

func TestSummarizeEmptyBlock(t *testing.T) {
	block := &common.Block{Number: "0x1406f40", Hash: "0xdef"}

	summary, err := Summarize(block)
	assert.NoError(t, err)
	assert.Equal(t, uint64(21000000), summary.BlockNumber)
	assert.Equal(t, 0, summary.TotalTransactions)
	assert.Empty(t, summary.BySender)
	assert.Empty(t, summary.ByReceiver)
	assert.NotNil(t, summary.BySender)
	assert.NotNil(t, summary.ByReceiver)
}

func TestSummarizeCountsMatchTransactionCount(t *testing.T) {
	block := &common.Block{
		Number: "0x10",
		Hash:   "0x123",
		Transactions: []common.Transaction{
			{From: "0xaa", To: strPtr("0xbb")},
			{From: "0xaa", To: strPtr("0xcc")},
			{From: "0xbb", To: strPtr("0xbb")},
			{From: "0xcc", To: nil},
			{From: "0xdd", To: strPtr("0xaa")},
		},
	}

	summary, err := Summarize(block)
	assert.NoError(t, err)
	assert.Equal(t, len(block.Transactions), summary.TotalTransactions)

	senderTotal := 0
	for _, n := range summary.BySender {
		senderTotal += n
	}
	receiverTotal := 0
	for _, n := range summary.ByReceiver {
		receiverTotal += n
	}
	assert.Equal(t, summary.TotalTransactions, senderTotal)
	assert.Equal(t, summary.TotalTransactions, receiverTotal)
}

func TestSummarizeDoesNotNormalizeAddressCase(t *testing.T) {
	// mixed-case duplicates of the same address count separately
	block := &common.Block{
		Number: "0x1",
		Hash:   "0x1",
		Transactions: []common.Transaction{
			{From: "0xAB", To: strPtr("0xCD")},
			{From: "0xab", To: strPtr("0xcd")},
		},
	}

	summary, err := Summarize(block)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int{"0xAB": 1, "0xab": 1}, summary.BySender)
	assert.Equal(t, map[string]int{"0xCD": 1, "0xcd": 1}, summary.ByReceiver)
}

func TestSummarizeMalformedBlock(t *testing.T) {
	testCases := []struct {
		name  string
		block *common.Block
	}{
		{name: "missing number", block: &common.Block{Hash: "0xabc"}},
		{name: "missing hash", block: &common.Block{Number: "0xa"}},
		{name: "invalid number", block: &common.Block{Number: "0xzz", Hash: "0xabc"}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := Summarize(tt.block)
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, common.ErrMalformedBlock)
		})
	}
}

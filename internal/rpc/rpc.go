package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"

	config "github.com/blocklens/blocksummary/configs"
	"github.com/blocklens/blocksummary/internal/common"
	"github.com/blocklens/blocksummary/internal/metrics"
)

var (
	// ErrBlockNotFound means the upstream returned a null result, e.g. a
	// block number past the chain head.
	ErrBlockNotFound = errors.New("block not found")
	// ErrUpstream means the upstream answered with a JSON-RPC error member.
	ErrUpstream = errors.New("upstream RPC error")
	// ErrUpstreamUnreachable means the upstream could not be reached or did
	// not answer with valid JSON-RPC at all.
	ErrUpstreamUnreachable = errors.New("upstream RPC unreachable")
)

type IRPCClient interface {
	GetBlockByNumber(ctx context.Context, number *uint64) (*common.Block, error)
	GetURL() string
	Close()
}

type Client struct {
	rpcClient *gethRpc.Client
	url       string
	timeout   time.Duration
}

func Initialize() (IRPCClient, error) {
	rpcUrl := config.Cfg.RPC.URL
	if rpcUrl == "" {
		return nil, fmt.Errorf("RPC_URL environment variable is not set")
	}
	return InitializeWithUrl(rpcUrl)
}

func InitializeWithUrl(url string) (IRPCClient, error) {
	log.Debug().Str("url", url).Msg("Initializing RPC")
	rpcClient, dialErr := gethRpc.Dial(url)
	if dialErr != nil {
		return nil, dialErr
	}

	timeout := time.Duration(config.Cfg.RPC.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		rpcClient: rpcClient,
		url:       url,
		timeout:   timeout,
	}, nil
}

// BlockArg converts an optional block number into the identifier expected by
// eth_getBlockByNumber: "latest" when nil, otherwise a 0x-prefixed lowercase
// hex string without leading zeros.
func BlockArg(number *uint64) string {
	if number == nil {
		return "latest"
	}
	return hexutil.EncodeUint64(*number)
}

// GetBlockByNumber fetches one block with full transaction objects. The call
// is bounded by the configured upstream timeout and is never retried.
func (rpc *Client) GetBlockByNumber(ctx context.Context, number *uint64) (*common.Block, error) {
	ctx, cancel := context.WithTimeout(ctx, rpc.timeout)
	defer cancel()

	blockArg := BlockArg(number)

	start := time.Now()
	var raw json.RawMessage
	err := rpc.rpcClient.CallContext(ctx, &raw, "eth_getBlockByNumber", blockArg, true)
	metrics.RPCCalls.Inc()
	metrics.RPCCallDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RPCCallErrors.Inc()
		var rpcErr gethRpc.Error
		if errors.As(err, &rpcErr) {
			return nil, fmt.Errorf("%w: %s (code %d)", ErrUpstream, rpcErr.Error(), rpcErr.ErrorCode())
		}
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnreachable, err)
	}

	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, blockArg)
	}

	var block common.Block
	if err := json.Unmarshal(raw, &block); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrMalformedBlock, err)
	}
	if err := block.Validate(); err != nil {
		return nil, err
	}

	return &block, nil
}

func (rpc *Client) GetURL() string {
	return rpc.url
}

func (rpc *Client) Close() {
	rpc.rpcClient.Close()
}

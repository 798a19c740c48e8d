package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/blocklens/blocksummary/api"
	"github.com/blocklens/blocksummary/internal/metrics"
	"github.com/blocklens/blocksummary/internal/rpc"
	"github.com/blocklens/blocksummary/internal/summarizer"
)

var (
	rpcClient rpc.IRPCClient
	rpcOnce   sync.Once
	rpcErr    error
)

func getRPCClient() (rpc.IRPCClient, error) {
	rpcOnce.Do(func() {
		rpcClient, rpcErr = rpc.Initialize()
	})
	return rpcClient, rpcErr
}

// GetBlockSummary handles GET /block. The optional `number` query parameter
// selects the block; without it the latest block is summarized.
func GetBlockSummary(c *gin.Context) {
	metrics.BlockSummaryRequests.Inc()

	queryParams, err := api.ParseBlockQueryParams(c.Request)
	if err != nil {
		metrics.InvalidBlockRequests.Inc()
		api.BadRequestErrorHandler(c, fmt.Errorf("invalid query parameters: %v", err))
		return
	}

	client, err := getRPCClient()
	if err != nil {
		log.Error().Err(err).Msg("Error initializing RPC client")
		api.InternalErrorHandler(c)
		return
	}

	block, err := client.GetBlockByNumber(c.Request.Context(), queryParams.Number)
	if err != nil {
		log.Error().Err(err).Str("rpc", client.GetURL()).Str("block", rpc.BlockArg(queryParams.Number)).Msg("Error fetching block")
		api.BadGatewayErrorHandler(c, err)
		return
	}

	summary, err := summarizer.Summarize(block)
	if err != nil {
		log.Error().Err(err).Str("block", rpc.BlockArg(queryParams.Number)).Msg("Error summarizing block")
		api.BadGatewayErrorHandler(c, err)
		return
	}

	sendJSONResponse(c, summary)
}

// GetIndex handles GET / with a short description of the service.
func GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Ethereum block summary API",
		"endpoints": gin.H{
			"/block": gin.H{
				"method": "GET",
				"query_params": gin.H{
					"number": "optional integer block number; if omitted, uses 'latest'",
				},
				"examples": []string{
					"/block",
					"/block?number=21000000",
				},
			},
		},
	})
}

func sendJSONResponse(c *gin.Context, response interface{}) {
	c.JSON(http.StatusOK, response)
}

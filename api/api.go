package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog/log"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BlockQueryParams are the query parameters accepted by GET /block. A nil
// Number means the latest block.
type BlockQueryParams struct {
	Number *uint64 `schema:"number"`
}

func writeError(c *gin.Context, message string, code int) {
	c.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}

var (
	BadRequestErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadRequest)
	}
	BadGatewayErrorHandler = func(c *gin.Context, err error) {
		writeError(c, err.Error(), http.StatusBadGateway)
	}
	InternalErrorHandler = func(c *gin.Context) {
		writeError(c, "An unexpected error occurred.", http.StatusInternalServerError)
	}
)

func ParseBlockQueryParams(r *http.Request) (BlockQueryParams, error) {
	var params BlockQueryParams
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	err := decoder.Decode(&params, r.URL.Query())
	if err != nil {
		log.Debug().Err(err).Msg("Error parsing query params")
		return BlockQueryParams{}, err
	}
	return params, nil
}

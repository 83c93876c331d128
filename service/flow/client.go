// Package flow talks to the REST api of a Flow access node.
package flow

import (
	"net/http"
	"time"

	"github.com/x-xyz/salesbot/domain"
)

const DefaultAccessNode = "https://rest-mainnet.onflow.org"

// Client runs scripts and reads transactions
type Client interface {
	domain.ChainQuery
	domain.TxLogFetcher
}

type ClientCfg struct {
	HttpClient http.Client
	// AccessNode is the REST endpoint, without the /v1 suffix
	AccessNode string
	Timeout    time.Duration
}

type scriptRequest struct {
	Script    string   `json:"script"`
	Arguments []string `json:"arguments"`
}

type transactionResult struct {
	BlockId      string           `json:"block_id"`
	Status       string           `json:"status"`
	ErrorMessage string           `json:"error_message"`
	Events       []domain.TxEvent `json:"events"`
}

type transaction struct {
	Id        string   `json:"id"`
	Arguments []string `json:"arguments"`
}

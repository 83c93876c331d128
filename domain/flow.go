package domain

import (
	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
)

// EventSource delivers sale events for the given event types. Subscribe
// blocks until c is done; transport failures are reported through onError.
type EventSource interface {
	Subscribe(c ctx.Ctx, eventTypes []string, onEvent func(*ChainEvent), onError func(error)) error
}

// ChainQuery runs read-only scripts, the result is decoded into plain values
type ChainQuery interface {
	ExecuteScript(c ctx.Ctx, script []byte, args ...cadence.Raw) (interface{}, error)
}

type TxLogFetcher interface {
	GetTransactionEvents(c ctx.Ctx, txId string) (TxEventLog, error)
	// GetTransactionArguments returns the base64 encoded arguments
	GetTransactionArguments(c ctx.Ctx, txId string) ([]string, error)
}

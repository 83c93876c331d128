package usecase

import (
	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
)

// assetMetadata is the name and image found in a transaction
type assetMetadata struct {
	Name     string
	ImageUrl string
	Source   string
}

func (m *assetMetadata) found() bool {
	return m.Source != ""
}

// absorb takes name and image from obj and its nested "metadata" object
func (m *assetMetadata) absorb(obj map[string]interface{}, source string) {
	if m.take(obj, source) {
		return
	}
	if nested, ok := obj["metadata"].(map[string]interface{}); ok {
		m.take(nested, source+".metadata")
	}
}

func (m *assetMetadata) take(obj map[string]interface{}, source string) bool {
	name := cadence.ToString(obj["name"])
	image := cadence.ToString(obj["imageUrl"])
	if image == "" {
		image = cadence.ToString(obj["imageURL"])
	}
	if name == "" && image == "" {
		return false
	}
	if name != "" {
		m.Name = name
	}
	if image != "" {
		m.ImageUrl = image
	}
	m.Source = source
	return true
}

// fromArguments reads base64 JSON arguments, either plain objects or
// JSON-Cadence values such as {String: String} dictionaries
func fromArguments(args []string) assetMetadata {
	var m assetMetadata
	for _, arg := range args {
		plain, ok := cadence.DecodeBase64JSON(arg)
		if !ok {
			continue
		}
		if cadence.IsCadence(plain) {
			v, err := cadence.DecodeBase64(arg)
			if err != nil {
				continue
			}
			if obj, ok := v.(map[string]interface{}); ok {
				m.absorb(obj, "arguments.cadence")
			}
			continue
		}
		if obj, ok := plain.(map[string]interface{}); ok {
			m.absorb(obj, "arguments")
		}
	}
	return m
}

func fromEvents(events domain.TxEventLog, m assetMetadata) assetMetadata {
	for _, ev := range events {
		p, ok := cadence.DecodePayload(ev.Payload)
		if !ok {
			continue
		}
		m.absorb(p.Values(), "events."+ev.Type)
	}
	return m
}

// extractMetadata looks at the transaction arguments first and the event
// payloads when nothing with an image was found there
func (b *base) extractMetadata(c ctx.Ctx, fc *domain.FormatContext) assetMetadata {
	txId := fc.Event.TransactionId
	args, err := b.txLog.GetTransactionArguments(c, txId)
	if err != nil {
		c.WithField("err", err).WithField("txId", txId).Warn("txLog.GetTransactionArguments failed")
	}
	m := fromArguments(args)
	if !m.found() || m.ImageUrl == "" {
		m = fromEvents(fc.Log, m)
	}
	c.WithField("txId", txId).WithField("metadata", m).Debug("extracted metadata")
	return m
}

package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/domain"
)

const flowscanTxUrl = "https://flowscan.io/transaction/%s"

// base carries what every collection formatter shares
type base struct {
	query    domain.ChainQuery
	txLog    domain.TxLogFetcher
	identity domain.IdentityUsecase
}

// parties re-derives seller and buyer from the event log. ok is false when
// the post must not be made.
func (b *base) parties(c ctx.Ctx, fc *domain.FormatContext) (domain.SaleParty, bool) {
	if !fc.Identity.HasInstanceId() {
		c.WithField("txId", fc.Event.TransactionId).Warn("instance id unresolved, not posting")
		return domain.SaleParty{}, false
	}
	party := b.identity.ResolveWithFallback(fc.Log, fc.Identity, fc.Event)
	if !party.HasSeller() && !party.HasBuyer() {
		c.WithFields(log.Fields{
			"txId":     fc.Event.TransactionId,
			"identity": fc.Identity,
		}).Warn("seller and buyer unresolved, not posting")
		return party, false
	}
	return party, true
}

// lookup runs a metadata script against the account most likely holding the asset
func (b *base) lookup(c ctx.Ctx, script []byte, party domain.SaleParty, id string) (map[string]interface{}, error) {
	addr := party.QueryAddress()
	if addr == "" {
		return nil, domain.ErrIdentityUnresolved
	}
	v, err := b.query.ExecuteScript(c, script, cadence.Address(addr), cadence.UInt64(id))
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrScriptReturnedNil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, xerrors.Errorf("unexpected script result %T: %w", v, domain.ErrScriptReturnedNil)
	}
	return m, nil
}

func header(displayPrice, tag string) string {
	if tag == "" {
		return displayPrice + " SALE"
	}
	return fmt.Sprintf("%s SALE on %s", displayPrice, tag)
}

func partyLines(party domain.SaleParty) []string {
	return []string{"Seller: " + party.Seller, "Buyer: " + party.Buyer}
}

func txLink(txId string) string {
	return fmt.Sprintf(flowscanTxUrl, txId)
}

func lines(ls ...[]string) string {
	var all []string
	for _, l := range ls {
		all = append(all, l...)
	}
	return strings.Join(all, "\n")
}

// str reads a decoded script field, "" when absent or null
func str(m map[string]interface{}, key string) string {
	return cadence.ToString(m[key])
}

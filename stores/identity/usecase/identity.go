package usecase

import (
	"strings"

	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/domain"
)

const (
	genericWithdrawn = "A.1d7e57aa55817448.NonFungibleToken.Withdrawn"
	genericDeposited = "A.1d7e57aa55817448.NonFungibleToken.Deposited"
)

// convention names the withdrawal/deposit pair emitted when an asset moves
type convention struct {
	withdraw string
	deposit  string
	// filterType drops events whose payload "type" names another asset
	filterType bool
}

var genericConvention = convention{
	withdraw:   genericWithdrawn,
	deposit:    genericDeposited,
	filterType: true,
}

// familyConvention is the contract's own Withdraw/Deposit, e.g. A.0b2a3299cc857e29.PackNFT.Withdraw
func familyConvention(assetType string) (convention, bool) {
	prefix := domain.ContractPrefix(assetType)
	if prefix == "" || !strings.HasPrefix(prefix, "A.") {
		return convention{}, false
	}
	return convention{
		withdraw: prefix + ".Withdraw",
		deposit:  prefix + ".Deposit",
	}, true
}

type impl struct{}

func New() domain.IdentityUsecase {
	return &impl{}
}

func (im *impl) ResolveParties(log domain.TxEventLog, assetType, assetInstanceId string) domain.SaleParty {
	conventions := []convention{}
	if c, ok := familyConvention(assetType); ok {
		conventions = append(conventions, c)
	}
	conventions = append(conventions, genericConvention)
	return scan(log, assetType, assetInstanceId, conventions...)
}

func (im *impl) ResolveWithFallback(log domain.TxEventLog, identity domain.AssetIdentity, event *domain.ChainEvent) domain.SaleParty {
	party := domain.NewSaleParty()
	if c, ok := familyConvention(identity.AssetType); ok {
		party = scan(log, identity.AssetType, identity.AssetInstanceId, c)
	}

	if !party.HasSeller() || !party.HasBuyer() {
		generic := scan(log, identity.AssetType, identity.AssetInstanceId, genericConvention)
		party = merge(party, generic)
	}

	if event != nil {
		party = merge(party, domain.SaleParty{
			Seller: eventAddress(event, "seller"),
			Buyer:  eventAddress(event, "buyer"),
		})
		if !party.HasSeller() {
			if addr := eventAddress(event, "storefrontAddress"); addr != "" {
				party.Seller = addr
			}
		}
	}
	return party
}

// scan walks log in order, the last event matching the instance id wins
func scan(log domain.TxEventLog, assetType, assetInstanceId string, conventions ...convention) domain.SaleParty {
	party := domain.NewSaleParty()
	if assetInstanceId == "" || assetInstanceId == domain.UnknownNFTID {
		return party
	}

	for _, ev := range log {
		var withdraw, deposit, filterType bool
		for _, c := range conventions {
			switch ev.Type {
			case c.withdraw:
				withdraw, filterType = true, c.filterType
			case c.deposit:
				deposit, filterType = true, c.filterType
			}
		}
		if !withdraw && !deposit {
			continue
		}

		p, ok := cadence.DecodePayload(ev.Payload)
		if !ok {
			continue
		}
		if p.String("id") != assetInstanceId {
			continue
		}
		if filterType && assetType != "" && assetType != domain.UnknownNFTType {
			if t := p.String("type"); t != "" && t != assetType {
				continue
			}
		}

		if withdraw {
			if from := p.Address("from"); from != "" {
				party.Seller = from
			}
		}
		if deposit {
			if to := p.Address("to"); to != "" {
				party.Buyer = to
			}
		}
	}
	return party
}

// merge fills the unknown side of a from b
func merge(a, b domain.SaleParty) domain.SaleParty {
	if !a.HasSeller() && b.HasSeller() {
		a.Seller = b.Seller
	}
	if !a.HasBuyer() && b.HasBuyer() {
		a.Buyer = b.Buyer
	}
	return a
}

func eventAddress(event *domain.ChainEvent, field string) string {
	if event.Data == nil {
		return ""
	}
	return cadence.UnwrapAddress(event.Data[field])
}

package usecase

import (
	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/domain"
)

type impl struct{}

func New() domain.ClassifierUsecase {
	return &impl{}
}

func (im *impl) Classify(event *domain.ChainEvent) domain.Classification {
	kind, implied := domain.KindOf(event.Type)

	assetType := eventAssetType(event.Data)
	if assetType == "" {
		assetType = implied
	}
	if assetType == "" {
		assetType = domain.UnknownNFTType
	}

	id := domain.UnknownNFTID
	for _, f := range []string{"nftID", "nftId", "id"} {
		if s := cadence.ToString(event.Data[f]); s != "" {
			id = s
			break
		}
	}

	return domain.Classification{
		AssetIdentity: domain.AssetIdentity{AssetType: assetType, AssetInstanceId: id},
		Marketplace:   domain.MarketplaceOf(event.Type),
		Kind:          kind,
	}
}

func eventAssetType(data map[string]interface{}) string {
	v := data["nftType"]
	if s, ok := v.(string); ok {
		return s
	}
	return cadence.ToString(cadence.Lookup(v, "typeID"))
}

func (im *impl) NeedsRefinement(identity domain.AssetIdentity) bool {
	return !identity.HasInstanceId() || !IsQualifiedAssetType(identity.AssetType)
}

func (im *impl) Refine(c ctx.Ctx, events domain.TxEventLog, identity domain.AssetIdentity) domain.AssetIdentity {
	var (
		qualified string
		fallback  string
		id        string
		firstId   string
	)
	if IsQualifiedAssetType(identity.AssetType) {
		qualified = identity.AssetType
	} else if identity.HasType() {
		fallback = identity.AssetType
	}
	if identity.HasInstanceId() {
		id = identity.AssetInstanceId
	}

	for _, ev := range events {
		if !isTransferEvent(ev.Type) {
			continue
		}
		p, ok := cadence.DecodePayload(ev.Payload)
		if !ok {
			continue
		}

		t := firstOf(p, typeExtractors)
		switch {
		case t == "":
		case IsQualifiedAssetType(t):
			if qualified == "" {
				qualified = t
			} else if t != qualified {
				c.WithFields(log.Fields{
					"event":   ev.Type,
					"kept":    qualified,
					"dropped": t,
				}).Warn("ambiguous asset type candidates, keeping first")
			}
		case fallback == "":
			fallback = t
		}

		candidate := firstOf(p, idExtractors)
		if candidate == "" {
			continue
		}
		if firstId == "" {
			firstId = candidate
		}
		// once the type is known only ids from events of that type, or untyped ones, count
		if id == "" && qualified != "" && (t == "" || t == qualified) {
			id = candidate
		}
	}

	res := domain.AssetIdentity{AssetType: domain.UnknownNFTType, AssetInstanceId: domain.UnknownNFTID}
	switch {
	case qualified != "":
		res.AssetType = qualified
	case fallback != "":
		res.AssetType = fallback
	}
	switch {
	case id != "":
		res.AssetInstanceId = id
	case firstId != "":
		res.AssetInstanceId = firstId
	}

	if res != identity {
		c.WithFields(log.Fields{
			"fromType": identity.AssetType,
			"fromId":   identity.AssetInstanceId,
			"toType":   res.AssetType,
			"toId":     res.AssetInstanceId,
		}).Info("refined asset identity")
	}
	return res
}

package usecase

import (
	"fmt"

	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
)

// marketplaceTags are the venues called out in the post header
var marketplaceTags = map[domain.Marketplace]string{
	domain.MarketplaceFlowty: "Flowty",
}

type generic struct {
	*base
}

func (f *generic) Format(c ctx.Ctx, fc *domain.FormatContext) (*domain.Post, error) {
	party, ok := f.parties(c, fc)
	if !ok {
		return nil, nil
	}
	id := fc.Identity.AssetInstanceId

	collection := domain.ContractName(fc.Identity.AssetType)
	if collection == "" {
		collection = "NFT"
	}

	meta := f.extractMetadata(c, fc)
	name := meta.Name
	image := meta.ImageUrl
	if eventMeta, ok := fc.Event.Data["metadata"].(map[string]interface{}); ok {
		if name == "" {
			name = cadence.ToString(eventMeta["name"])
		}
		if image == "" {
			image = cadence.ToString(eventMeta["imageUrl"])
		}
	}
	if name == "" {
		name = fmt.Sprintf("%s #%s", collection, id)
	}

	link := txLink(fc.Event.TransactionId)
	return &domain.Post{
		Title: name,
		Text: lines(
			[]string{header(fc.DisplayPrice, marketplaceTags[fc.Marketplace]), collection + ": " + name},
			partyLines(party),
			[]string{link},
		),
		ImageUrl: image,
		Link:     link,
	}, nil
}

package usecase

import (
	"fmt"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
	"github.com/x-xyz/salesbot/service/flow/scripts"
)

const mattelTokenUrl = "https://virtual.mattel.com/token/FLOW:A.d0bcefdf1e67ea85.HWGarageCardV2:%s"

type hotWheels struct {
	*base
}

func (f *hotWheels) Format(c ctx.Ctx, fc *domain.FormatContext) (*domain.Post, error) {
	party, ok := f.parties(c, fc)
	if !ok {
		return nil, nil
	}
	id := fc.Identity.AssetInstanceId
	isCard := fc.Identity.AssetType == domain.HotWheelsCardType

	headline := "Hot Wheels Virtual Garage"
	// only cards expose the traits the script reads
	if isCard {
		meta, err := f.lookup(c, scripts.HotWheels, party, id)
		if err != nil {
			c.WithField("err", err).WithField("id", id).Warn("hotwheels metadata lookup failed")
		} else {
			headline = fmt.Sprintf("%s - %s", str(meta, "miniCollection"), str(meta, "rarity"))
			if mint := str(meta, "mint"); mint != "" {
				headline += " - #" + mint
			}
		}
	}

	link := txLink(fc.Event.TransactionId)
	if isCard {
		link = fmt.Sprintf(mattelTokenUrl, id)
	}

	info := domain.InfoOf(domain.CollectionHotWheels)
	return &domain.Post{
		Title: headline,
		Text: lines(
			[]string{header(fc.DisplayPrice, info.Tag), headline},
			partyLines(party),
			[]string{link},
		),
		Link: link,
	}, nil
}

package usecase

import (
	"fmt"

	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
	"github.com/x-xyz/salesbot/service/flow/scripts"
)

const topShotImageUrl = "https://assets.nbatopshot.com/media/%s/image?quality=100&width=500"

type topShot struct {
	*base
}

func (f *topShot) Format(c ctx.Ctx, fc *domain.FormatContext) (*domain.Post, error) {
	party, ok := f.parties(c, fc)
	if !ok {
		return nil, nil
	}
	id := fc.Identity.AssetInstanceId

	meta, err := f.lookup(c, scripts.TopShot, party, id)
	if err != nil {
		c.WithField("err", err).WithField("id", id).Warn("topshot metadata lookup failed")
	}

	headline := cadence.ToString(fc.Event.Data["momentName"])
	if headline == "" {
		headline = "Unknown NFT"
	}
	if fullName, setName, series := str(meta, "fullName"), str(meta, "setName"), str(meta, "seriesNumber"); fullName != "" && setName != "" && series != "" {
		headline = fmt.Sprintf("%s - %s (Series %s)", fullName, setName, series)
	}

	body := []string{headline}
	if sub := str(meta, "subedition"); sub != "" && sub != "Standard" {
		body = append(body, sub)
	}
	if serial, size := str(meta, "serialNumber"), str(meta, "numMomentsInEdition"); serial != "" && size != "" {
		body = append(body, fmt.Sprintf("%s / %s", serial, size))
	}

	info := domain.InfoOf(domain.CollectionTopShotMoment)
	return &domain.Post{
		Title: headline,
		Text: lines(
			[]string{header(fc.DisplayPrice, info.Tag)},
			body,
			partyLines(party),
			[]string{txLink(fc.Event.TransactionId)},
		),
		ImageUrl: fmt.Sprintf(topShotImageUrl, id),
		Link:     txLink(fc.Event.TransactionId),
	}, nil
}

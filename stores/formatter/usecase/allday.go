package usecase

import (
	"fmt"

	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
	"github.com/x-xyz/salesbot/service/flow/scripts"
)

const allDayMomentUrl = "https://nflallday.com/moments/%s"

type allDay struct {
	*base
}

func (f *allDay) Format(c ctx.Ctx, fc *domain.FormatContext) (*domain.Post, error) {
	if fc.Identity.AssetType != domain.AllDayMomentType {
		c.WithField("assetType", fc.Identity.AssetType).Warn("not an all day moment")
		return nil, nil
	}
	party, ok := f.parties(c, fc)
	if !ok {
		return nil, nil
	}
	id := fc.Identity.AssetInstanceId

	name := fmt.Sprintf("NFL ALL DAY Moment #%s", id)
	var image string
	display, err := f.lookup(c, scripts.AllDay, party, id)
	if err != nil {
		c.WithField("err", err).WithField("id", id).Warn("allday metadata lookup failed")
	} else {
		if s := str(display, "name"); s != "" {
			name = s
		}
		// thumbnail is a MetadataViews.HTTPFile
		image = cadence.ToString(cadence.Lookup(display["thumbnail"], "url"))
		if image == "" {
			image = str(display, "thumbnail")
		}
	}

	info := domain.InfoOf(domain.CollectionNflAllDay)
	link := fmt.Sprintf(allDayMomentUrl, id)
	return &domain.Post{
		Title: name,
		Text: fmt.Sprintf("%s bought for %s on %s! 🏈\n\n%s\n\n%s",
			name, fc.DisplayPrice, info.Tag, lines(partyLines(party)), link),
		ImageUrl: image,
		Link:     link,
	}, nil
}

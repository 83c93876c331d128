package usecase

import (
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
)

// pack serves every PackNFT contract listed in the catalogue
type pack struct {
	*base
}

func (f *pack) Format(c ctx.Ctx, fc *domain.FormatContext) (*domain.Post, error) {
	info := domain.InfoOf(domain.CollectionOf(fc.Identity.AssetType))
	if info.Collection != domain.CollectionTopShotPack && info.Collection != domain.CollectionNflPack {
		c.WithField("assetType", fc.Identity.AssetType).Warn("pack contract not configured")
		return nil, nil
	}

	party, ok := f.parties(c, fc)
	if !ok {
		return nil, nil
	}

	meta := f.extractMetadata(c, fc)
	name := meta.Name
	if name == "" {
		name = "Unknown Pack"
	}

	link := txLink(fc.Event.TransactionId)
	return &domain.Post{
		Title: name,
		Text: lines(
			[]string{header(fc.DisplayPrice, info.Tag), name},
			partyLines(party),
			[]string{link},
		),
		ImageUrl: info.RewriteImage(meta.ImageUrl),
		Link:     link,
	}, nil
}

package usecase

import (
	"fmt"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
	"github.com/x-xyz/salesbot/service/flow/scripts"
)

const pinnacleUrl = "https://disneypinnacle.com/pin/%s"

type pinnacle struct {
	*base
}

func (f *pinnacle) Format(c ctx.Ctx, fc *domain.FormatContext) (*domain.Post, error) {
	party, ok := f.parties(c, fc)
	if !ok {
		return nil, nil
	}
	id := fc.Identity.AssetInstanceId
	info := domain.InfoOf(domain.CollectionPinnacle)

	pin, err := f.lookup(c, scripts.Pinnacle, party, id)
	if err != nil {
		c.WithField("err", err).WithField("id", id).Warn("pinnacle metadata lookup failed")
		return &domain.Post{
			Title: "Unknown NFT",
			Text: lines(
				[]string{header(fc.DisplayPrice, info.Tag), fmt.Sprintf("Unknown NFT (ID: %s)", id)},
				partyLines(party),
				[]string{pinnacleFallbackNote(err)},
			),
			Link: txLink(fc.Event.TransactionId),
		}, nil
	}

	editionId := str(pin, "editionID")
	if editionId == "" {
		editionId = "N/A"
	}
	editionName, maxMint := "Unknown Edition", "N/A"
	if editions, ok := pin["editions"].([]interface{}); ok && len(editions) > 0 {
		first, _ := editions[0].(map[string]interface{})
		if s := str(first, "name"); s != "" {
			editionName = s
		}
		if s := str(first, "max"); s != "" {
			maxMint = s
		}
	}

	body := []string{editionName}
	if serial := str(pin, "serialNumber"); serial != "" {
		body = append(body, "Serial #: "+serial)
	}
	body = append(body,
		"Max Mint: "+maxMint,
		"Character(s): "+characters(pin["traits"]),
		"Edition ID: "+editionId,
	)

	link := fmt.Sprintf(pinnacleUrl, editionId)
	return &domain.Post{
		Title: editionName,
		Text: lines(
			[]string{header(fc.DisplayPrice, info.Tag)},
			body,
			partyLines(party),
			[]string{link},
		),
		Link: link,
	}, nil
}

func pinnacleFallbackNote(err error) string {
	switch {
	case xerrors.Is(err, domain.ErrIdentityUnresolved):
		return "(Could not fetch metadata - address unknown)"
	case xerrors.Is(err, domain.ErrScriptReturnedNil):
		return "(Could not fetch metadata - script returned null)"
	}
	return "(Error fetching metadata)"
}

// characters joins the value of the "Characters" trait
func characters(traits interface{}) string {
	list, _ := traits.([]interface{})
	for _, t := range list {
		trait, ok := t.(map[string]interface{})
		if !ok || str(trait, "name") != "Characters" {
			continue
		}
		switch v := trait["value"].(type) {
		case []interface{}:
			names := make([]string, 0, len(v))
			for _, n := range v {
				if s := cadence.ToString(n); s != "" {
					names = append(names, s)
				}
			}
			if len(names) > 0 {
				return strings.Join(names, ", ")
			}
		default:
			if s := cadence.ToString(v); s != "" {
				return s
			}
		}
	}
	return "N/A"
}

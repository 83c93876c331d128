package domain

import "strings"

type Collection string

const (
	CollectionTopShotMoment Collection = "TOPSHOT_MOMENT"
	CollectionTopShotPack   Collection = "TOPSHOT_PACK"
	CollectionNflPack       Collection = "NFL_PACK"
	CollectionNflAllDay     Collection = "NFL_ALLDAY"
	CollectionHotWheels     Collection = "HOTWHEELS"
	CollectionPinnacle      Collection = "PINNACLE"
	CollectionGenericOther  Collection = "GENERIC_OTHER"
)

// Collections lists every known collection
var Collections = []Collection{
	CollectionTopShotMoment,
	CollectionTopShotPack,
	CollectionNflPack,
	CollectionNflAllDay,
	CollectionHotWheels,
	CollectionPinnacle,
	CollectionGenericOther,
}

func (c Collection) Valid() bool {
	for _, k := range Collections {
		if k == c {
			return true
		}
	}
	return false
}

const (
	TopShotMomentType  = "A.0b2a3299cc857e29.TopShot.NFT"
	TopShotPackType    = "A.0b2a3299cc857e29.PackNFT.NFT"
	NflPackType        = "A.e4cf4bdc1751c65d.PackNFT.NFT"
	AllDayMomentType   = "A.e4cf4bdc1751c65d.AllDay.NFT"
	HotWheelsCardType  = "A.d0bcefdf1e67ea85.HWGarageCardV2.NFT"
	HotWheelsTokenType = "A.d0bcefdf1e67ea85.HWGarageTokenV2.NFT"
	PinnacleType       = "A.edf9df96c92f4595.Pinnacle.NFT"
)

// ImageRewrite swaps a preview host/path for the resized asset one
type ImageRewrite struct {
	From string
	To   string
}

type CollectionInfo struct {
	Collection Collection
	AssetTypes []string
	// Tag is the handle the post mentions, "SALE on <Tag>"
	Tag           string
	ImageRewrites []ImageRewrite
}

const imageSizeQuery = "quality=100&width=500"

// RewriteImage applies the host rewrites and the fixed size query
func (ci CollectionInfo) RewriteImage(url string) string {
	if url == "" {
		return ""
	}
	res := url
	for _, r := range ci.ImageRewrites {
		res = strings.Replace(res, r.From, r.To, 1)
	}
	if strings.Contains(url, "?") {
		return res + "&" + imageSizeQuery
	}
	return res + "?" + imageSizeQuery
}

var catalogue = []CollectionInfo{
	{
		Collection: CollectionTopShotMoment,
		AssetTypes: []string{TopShotMomentType},
		Tag:        "@NBATopShot",
	},
	{
		Collection: CollectionTopShotPack,
		AssetTypes: []string{TopShotPackType},
		Tag:        "@NBATopShot",
		ImageRewrites: []ImageRewrite{
			{"asset-preview.nbatopshot.com/packs", "assets.nbatopshot.com/resize/packs"},
			{"assets.nbatopshot.com/packs", "assets.nbatopshot.com/resize/packs"},
		},
	},
	{
		Collection: CollectionNflPack,
		AssetTypes: []string{NflPackType},
		Tag:        "@NFLALLDAY",
		ImageRewrites: []ImageRewrite{
			{"assets.nflallday.com/tmp/", "assets.nflallday.com/resize/tmp/"},
			{"assets.nflallday.com/packs/", "assets.nflallday.com/resize/packs/"},
		},
	},
	{
		Collection: CollectionNflAllDay,
		AssetTypes: []string{AllDayMomentType},
		Tag:        "@NFLALLDAY",
	},
	{
		Collection: CollectionHotWheels,
		AssetTypes: []string{HotWheelsCardType, HotWheelsTokenType},
		Tag:        "@Hot_Wheels Virtual Garage",
	},
	{
		Collection: CollectionPinnacle,
		AssetTypes: []string{PinnacleType},
		Tag:        "@DisneyPinnacle",
	},
	{
		Collection: CollectionGenericOther,
	},
}

// CollectionOf maps an asset type to its collection, GENERIC_OTHER when unknown
func CollectionOf(assetType string) Collection {
	for _, ci := range catalogue {
		for _, t := range ci.AssetTypes {
			if t == assetType {
				return ci.Collection
			}
		}
	}
	return CollectionGenericOther
}

func InfoOf(c Collection) CollectionInfo {
	for _, ci := range catalogue {
		if ci.Collection == c {
			return ci
		}
	}
	return CollectionInfo{Collection: CollectionGenericOther}
}

// ContractPrefix returns the "A.<address>.<Contract>" part of an asset type
func ContractPrefix(assetType string) string {
	parts := strings.Split(assetType, ".")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[:3], ".")
}

// ContractName returns the third dot segment of an asset type
func ContractName(assetType string) string {
	parts := strings.Split(assetType, ".")
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

package domain

import "strings"

type Marketplace string

const (
	MarketplaceStorefront   Marketplace = "Storefront"
	MarketplaceFlowty       Marketplace = "Flowty"
	MarketplaceOffers       Marketplace = "Offers"
	MarketplaceDirectMarket Marketplace = "TopShotMarket"
	MarketplaceUnknown      Marketplace = "Unknown"
)

type EventKind string

const (
	KindListing        EventKind = "listing"
	KindOffer          EventKind = "offer"
	KindMomentPurchase EventKind = "moment_purchase"
	KindUnknown        EventKind = "unknown"
)

// RequiresPurchasedFlag is true for kinds that also fire on cancellation
func (k EventKind) RequiresPurchasedFlag() bool {
	return k == KindListing || k == KindOffer
}

type marketplaceRule struct {
	prefix      string
	marketplace Marketplace
}

var marketplaceRules = []marketplaceRule{
	{"A.4eb8a10cb9f87357.NFTStorefront", MarketplaceStorefront},
	{"A.3cdbb3d569211ff3.NFTStorefront", MarketplaceFlowty},
	{"A.b8ea91944fd51c43.Offers", MarketplaceOffers},
	{"A.c1e4f4f4c4257510.TopShotMarket", MarketplaceDirectMarket},
}

type kindRule struct {
	suffix string
	kind   EventKind
	// assetType is implied by the event when the payload carries no nftType
	assetType string
}

var kindRules = []kindRule{
	{".ListingCompleted", KindListing, ""},
	{".OfferCompleted", KindOffer, ""},
	{"TopShotMarketV2.MomentPurchased", KindMomentPurchase, TopShotMomentType},
	{"TopShotMarketV3.MomentPurchased", KindMomentPurchase, TopShotMomentType},
	{".MomentPurchased", KindMomentPurchase, ""},
}

// MarketplaceOf maps an event type to the venue that emitted it
func MarketplaceOf(eventType string) Marketplace {
	for _, r := range marketplaceRules {
		if strings.HasPrefix(eventType, r.prefix) {
			return r.marketplace
		}
	}
	return MarketplaceUnknown
}

// KindOf maps an event type to its kind and the asset type it implies, if any
func KindOf(eventType string) (EventKind, string) {
	for _, r := range kindRules {
		if strings.HasSuffix(eventType, r.suffix) {
			return r.kind, r.assetType
		}
	}
	return KindUnknown, ""
}

// Classification is the outcome of reading the primary event
type Classification struct {
	AssetIdentity
	Marketplace Marketplace
	Kind        EventKind
}

// SaleEventTypes are the events the bot subscribes to
var SaleEventTypes = []string{
	"A.4eb8a10cb9f87357.NFTStorefrontV2.ListingCompleted",
	"A.3cdbb3d569211ff3.NFTStorefrontV2.ListingCompleted",
	"A.b8ea91944fd51c43.OffersV2.OfferCompleted",
	"A.c1e4f4f4c4257510.TopShotMarketV2.MomentPurchased",
	"A.c1e4f4f4c4257510.TopShotMarketV3.MomentPurchased",
}

package domain

import (
	"github.com/shopspring/decimal"
)

const (
	UnknownNFTType = "UnknownNFTType"
	UnknownNFTID   = "UnknownNFTID"
	UnknownSeller  = "UnknownSeller"
	UnknownBuyer   = "UnknownBuyer"

	// FlowVault is the payment vault of the native token
	FlowVault = "A.1654653399040a61.FlowToken.Vault"
)

// ChainEvent is one sale notification. Data holds the decoded event fields.
type ChainEvent struct {
	TransactionId string
	Type          string
	Data          map[string]interface{}
}

// TxEvent is one event emitted in a transaction, Payload is base64 JSON-Cadence and may be empty
type TxEvent struct {
	Type          string `json:"type"`
	TransactionId string `json:"transaction_id"`
	Payload       string `json:"payload"`
}

type TxEventLog []TxEvent

type AssetIdentity struct {
	AssetType       string
	AssetInstanceId string
}

func (a AssetIdentity) HasType() bool {
	return a.AssetType != "" && a.AssetType != UnknownNFTType
}

func (a AssetIdentity) HasInstanceId() bool {
	return a.AssetInstanceId != "" && a.AssetInstanceId != UnknownNFTID
}

type SaleParty struct {
	Seller string
	Buyer  string
}

func NewSaleParty() SaleParty {
	return SaleParty{Seller: UnknownSeller, Buyer: UnknownBuyer}
}

func (p SaleParty) HasSeller() bool {
	return p.Seller != "" && p.Seller != UnknownSeller
}

func (p SaleParty) HasBuyer() bool {
	return p.Buyer != "" && p.Buyer != UnknownBuyer
}

// QueryAddress is the account most likely to hold the asset after the sale
func (p SaleParty) QueryAddress() string {
	if p.HasBuyer() {
		return p.Buyer
	}
	if p.HasSeller() {
		return p.Seller
	}
	return ""
}

type PriceInfo struct {
	RawAmount       decimal.Decimal
	PaymentCurrency string
	UsdAmount       decimal.Decimal
	NativeAmount    decimal.Decimal
	DisplayString   string
}

// Post is a publishable sale summary
type Post struct {
	Text     string
	ImageUrl string
	// Title and Link are used by publishers that render embeds
	Title string
	Link  string
}

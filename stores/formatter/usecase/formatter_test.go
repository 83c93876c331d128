package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/salesbot/base/cadence"
	ct "github.com/x-xyz/salesbot/base/cadence/cadencetest"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
	"github.com/x-xyz/salesbot/domain/mocks"
	"github.com/x-xyz/salesbot/service/flow/scripts"
)

var mockCtx = ctx.Background()

const (
	seller  = "0x00000000000000a1"
	buyer   = "0x00000000000000b2"
	txId    = "tx1"
	txUrl   = "https://flowscan.io/transaction/tx1"
	flowFmt = "10 FLOW (~$3.50)"
	usdFmt  = "$120.00 (~240.00 FLOW)"
)

var bothParties = domain.SaleParty{Seller: seller, Buyer: buyer}

type formatterSuite struct {
	suite.Suite

	query    *mocks.ChainQuery
	txLog    *mocks.TxLogFetcher
	identity *mocks.IdentityUsecase
	im       domain.FormatterUsecase
}

func TestFormatter(t *testing.T) {
	suite.Run(t, new(formatterSuite))
}

func (s *formatterSuite) SetupTest() {
	s.query = &mocks.ChainQuery{}
	s.txLog = &mocks.TxLogFetcher{}
	s.identity = &mocks.IdentityUsecase{}
	s.im = New(&Cfg{Query: s.query, TxLog: s.txLog, Identity: s.identity})
}

func (s *formatterSuite) TearDownTest() {
	s.query.AssertExpectations(s.T())
	s.txLog.AssertExpectations(s.T())
	s.identity.AssertExpectations(s.T())
}

func (s *formatterSuite) context(assetType, id, price string) *domain.FormatContext {
	return &domain.FormatContext{
		Event:        &domain.ChainEvent{TransactionId: txId, Data: map[string]interface{}{}},
		DisplayPrice: price,
		Marketplace:  domain.MarketplaceStorefront,
		Identity:     domain.AssetIdentity{AssetType: assetType, AssetInstanceId: id},
	}
}

func (s *formatterSuite) resolves(party domain.SaleParty) {
	s.identity.On("ResolveWithFallback", mock.Anything, mock.Anything, mock.Anything).Return(party).Once()
}

func (s *formatterSuite) script(script []byte, addr, id string, res interface{}, err error) {
	s.query.On("ExecuteScript", mock.Anything, script, cadence.Address(addr), cadence.UInt64(id)).Return(res, err).Once()
}

func (s *formatterSuite) TestTopShot() {
	s.resolves(bothParties)
	s.script(scripts.TopShot, buyer, "42", map[string]interface{}{
		"fullName":            "LeBron James",
		"setName":             "Base Set",
		"seriesNumber":        "2",
		"serialNumber":        "17",
		"numMomentsInEdition": "1000",
		"subedition":          "Parallel",
	}, nil)

	post, err := s.im.Format(mockCtx, domain.CollectionTopShotMoment, s.context(domain.TopShotMomentType, "42", flowFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("10 FLOW (~$3.50) SALE on @NBATopShot\n"+
		"LeBron James - Base Set (Series 2)\n"+
		"Parallel\n"+
		"17 / 1000\n"+
		"Seller: "+seller+"\n"+
		"Buyer: "+buyer+"\n"+
		txUrl, post.Text)
	s.Equal("https://assets.nbatopshot.com/media/42/image?quality=100&width=500", post.ImageUrl)
}

func (s *formatterSuite) TestTopShotLookupFailed() {
	s.resolves(domain.SaleParty{Seller: seller, Buyer: domain.UnknownBuyer})
	s.script(scripts.TopShot, seller, "42", nil, errors.New("boom"))

	post, err := s.im.Format(mockCtx, domain.CollectionTopShotMoment, s.context(domain.TopShotMomentType, "42", flowFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("10 FLOW (~$3.50) SALE on @NBATopShot\n"+
		"Unknown NFT\n"+
		"Seller: "+seller+"\n"+
		"Buyer: UnknownBuyer\n"+
		txUrl, post.Text)
}

func (s *formatterSuite) TestUnresolvedParties() {
	s.resolves(domain.NewSaleParty())

	post, err := s.im.Format(mockCtx, domain.CollectionTopShotMoment, s.context(domain.TopShotMomentType, "42", flowFmt))
	s.NoError(err)
	s.Nil(post)
}

func (s *formatterSuite) TestUnresolvedInstanceId() {
	for _, c := range domain.Collections {
		post, err := s.im.Format(mockCtx, c, s.context(domain.PinnacleType, domain.UnknownNFTID, flowFmt))
		s.NoError(err, c)
		s.Nil(post, c)
	}
}

func (s *formatterSuite) TestTopShotPackFromPlainArgument() {
	s.resolves(bothParties)
	s.txLog.On("GetTransactionArguments", mock.Anything, txId).Return([]string{
		ct.Encode(map[string]interface{}{"name": "Rookie Pack", "imageUrl": "https://asset-preview.nbatopshot.com/packs/x.png"}),
	}, nil).Once()

	post, err := s.im.Format(mockCtx, domain.CollectionTopShotPack, s.context(domain.TopShotPackType, "5", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("$120.00 (~240.00 FLOW) SALE on @NBATopShot\n"+
		"Rookie Pack\n"+
		"Seller: "+seller+"\n"+
		"Buyer: "+buyer+"\n"+
		txUrl, post.Text)
	s.Equal("https://assets.nbatopshot.com/resize/packs/x.png?quality=100&width=500", post.ImageUrl)
}

func (s *formatterSuite) TestNflPackFromCadenceDictionary() {
	s.resolves(bothParties)
	s.txLog.On("GetTransactionArguments", mock.Anything, txId).Return([]string{
		ct.Encode(ct.String("ignored")),
		ct.Encode(ct.Dictionary(map[string]string{"name": "Playoffs Pack", "imageUrl": "https://assets.nflallday.com/packs/p.png?v=2"})),
	}, nil).Once()

	post, err := s.im.Format(mockCtx, domain.CollectionNflPack, s.context(domain.NflPackType, "5", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Contains(post.Text, "SALE on @NFLALLDAY\nPlayoffs Pack\n")
	s.Equal("https://assets.nflallday.com/resize/packs/p.png?v=2&quality=100&width=500", post.ImageUrl)
}

func (s *formatterSuite) TestPackFromEventPayload() {
	s.resolves(bothParties)
	s.txLog.On("GetTransactionArguments", mock.Anything, txId).Return(nil, errors.New("boom")).Once()

	fc := s.context(domain.TopShotPackType, "5", usdFmt)
	fc.Log = domain.TxEventLog{
		{Type: "A.0b2a3299cc857e29.PackNFT.Deposit", Payload: "###"},
		{Type: "A.0b2a3299cc857e29.PackNFT.Opened", Payload: ct.Event("A.0b2a3299cc857e29.PackNFT.Opened",
			ct.F("metadata", ct.Dictionary(map[string]string{"name": "Hoops Pack", "imageURL": "https://assets.nbatopshot.com/packs/h.png"})),
		)},
	}
	post, err := s.im.Format(mockCtx, domain.CollectionTopShotPack, fc)
	s.NoError(err)
	s.Require().NotNil(post)
	s.Contains(post.Text, "\nHoops Pack\n")
	s.Equal("https://assets.nbatopshot.com/resize/packs/h.png?quality=100&width=500", post.ImageUrl)
}

func (s *formatterSuite) TestPackWithoutMetadata() {
	s.resolves(bothParties)
	s.txLog.On("GetTransactionArguments", mock.Anything, txId).Return([]string{}, nil).Once()

	post, err := s.im.Format(mockCtx, domain.CollectionTopShotPack, s.context(domain.TopShotPackType, "5", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Contains(post.Text, "\nUnknown Pack\n")
	s.Empty(post.ImageUrl)
}

func (s *formatterSuite) TestPackUnknownContract() {
	post, err := s.im.Format(mockCtx, domain.CollectionTopShotPack, s.context("A.0000000000000001.PackNFT.NFT", "5", usdFmt))
	s.NoError(err)
	s.Nil(post)
}

func (s *formatterSuite) TestHotWheelsCard() {
	s.resolves(bothParties)
	s.script(scripts.HotWheels, buyer, "56", map[string]interface{}{
		"miniCollection": "2023 Series Completion",
		"rarity":         "Exclusive",
		"mint":           "56",
	}, nil)

	post, err := s.im.Format(mockCtx, domain.CollectionHotWheels, s.context(domain.HotWheelsCardType, "56", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("$120.00 (~240.00 FLOW) SALE on @Hot_Wheels Virtual Garage\n"+
		"2023 Series Completion - Exclusive - #56\n"+
		"Seller: "+seller+"\n"+
		"Buyer: "+buyer+"\n"+
		"https://virtual.mattel.com/token/FLOW:A.d0bcefdf1e67ea85.HWGarageCardV2:56", post.Text)
	s.Empty(post.ImageUrl)
}

func (s *formatterSuite) TestHotWheelsToken() {
	s.resolves(bothParties)

	post, err := s.im.Format(mockCtx, domain.CollectionHotWheels, s.context(domain.HotWheelsTokenType, "3", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Contains(post.Text, "\nHot Wheels Virtual Garage\n")
	s.Equal(txUrl, post.Link)
}

func (s *formatterSuite) TestPinnacle() {
	s.resolves(bothParties)
	s.script(scripts.Pinnacle, buyer, "7", map[string]interface{}{
		"editionID":    "550",
		"serialNumber": "12",
		"traits": []interface{}{
			map[string]interface{}{"name": "Studios", "value": "Pixar"},
			map[string]interface{}{"name": "Characters", "value": []interface{}{"Alien", "Woody"}},
		},
		"editions": []interface{}{
			map[string]interface{}{"name": "Tin Toy", "number": "12", "max": "100"},
		},
	}, nil)

	post, err := s.im.Format(mockCtx, domain.CollectionPinnacle, s.context(domain.PinnacleType, "7", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("$120.00 (~240.00 FLOW) SALE on @DisneyPinnacle\n"+
		"Tin Toy\n"+
		"Serial #: 12\n"+
		"Max Mint: 100\n"+
		"Character(s): Alien, Woody\n"+
		"Edition ID: 550\n"+
		"Seller: "+seller+"\n"+
		"Buyer: "+buyer+"\n"+
		"https://disneypinnacle.com/pin/550", post.Text)
}

func (s *formatterSuite) TestPinnacleScriptReturnedNil() {
	s.resolves(bothParties)
	s.script(scripts.Pinnacle, buyer, "7", nil, nil)

	post, err := s.im.Format(mockCtx, domain.CollectionPinnacle, s.context(domain.PinnacleType, "7", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("$120.00 (~240.00 FLOW) SALE on @DisneyPinnacle\n"+
		"Unknown NFT (ID: 7)\n"+
		"Seller: "+seller+"\n"+
		"Buyer: "+buyer+"\n"+
		"(Could not fetch metadata - script returned null)", post.Text)
}

func (s *formatterSuite) TestPinnacleQueryFailed() {
	s.resolves(bothParties)
	s.script(scripts.Pinnacle, buyer, "7", nil, errors.New("boom"))

	post, err := s.im.Format(mockCtx, domain.CollectionPinnacle, s.context(domain.PinnacleType, "7", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Contains(post.Text, "\n(Error fetching metadata)")
}

func (s *formatterSuite) TestAllDay() {
	s.resolves(bothParties)
	s.script(scripts.AllDay, buyer, "9", map[string]interface{}{
		"name":      "Josh Allen Rush",
		"thumbnail": map[string]interface{}{"url": "https://assets.nflallday.com/m/9.png"},
	}, nil)

	post, err := s.im.Format(mockCtx, domain.CollectionNflAllDay, s.context(domain.AllDayMomentType, "9", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("Josh Allen Rush bought for $120.00 (~240.00 FLOW) on @NFLALLDAY! 🏈\n\n"+
		"Seller: "+seller+"\n"+
		"Buyer: "+buyer+"\n\n"+
		"https://nflallday.com/moments/9", post.Text)
	s.Equal("https://assets.nflallday.com/m/9.png", post.ImageUrl)
}

func (s *formatterSuite) TestAllDayDefaultName() {
	s.resolves(bothParties)
	s.script(scripts.AllDay, buyer, "9", nil, nil)

	post, err := s.im.Format(mockCtx, domain.CollectionNflAllDay, s.context(domain.AllDayMomentType, "9", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("NFL ALL DAY Moment #9", post.Title)
	s.Empty(post.ImageUrl)
}

func (s *formatterSuite) TestGenericOnFlowty() {
	s.resolves(bothParties)
	s.txLog.On("GetTransactionArguments", mock.Anything, txId).Return([]string{}, nil).Once()

	fc := s.context("A.0000000000000001.Foo.NFT", "3", usdFmt)
	fc.Marketplace = domain.MarketplaceFlowty
	fc.Event.Data["metadata"] = map[string]interface{}{"name": "Foo Thing", "imageUrl": "https://foo/3.png"}

	post, err := s.im.Format(mockCtx, domain.CollectionGenericOther, fc)
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("$120.00 (~240.00 FLOW) SALE on Flowty\n"+
		"Foo: Foo Thing\n"+
		"Seller: "+seller+"\n"+
		"Buyer: "+buyer+"\n"+
		txUrl, post.Text)
	s.Equal("https://foo/3.png", post.ImageUrl)
}

func (s *formatterSuite) TestGenericDefaultName() {
	s.resolves(bothParties)
	s.txLog.On("GetTransactionArguments", mock.Anything, txId).Return([]string{}, nil).Once()

	post, err := s.im.Format(mockCtx, domain.Collection("SOMETHING_ELSE"), s.context("A.0000000000000001.Foo.NFT", "3", usdFmt))
	s.NoError(err)
	s.Require().NotNil(post)
	s.Equal("$120.00 (~240.00 FLOW) SALE\n"+
		"Foo: Foo #3\n"+
		"Seller: "+seller+"\n"+
		"Buyer: "+buyer+"\n"+
		txUrl, post.Text)
}

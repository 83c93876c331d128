package tracker

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/counter"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/base/metrics"
	"github.com/x-xyz/salesbot/domain"
)

type State string

const (
	StateReceived         State = "received"
	StatePriceChecked     State = "price_checked"
	StateClassified       State = "classified"
	StateIdentityResolved State = "identity_resolved"
	StateThresholdChecked State = "threshold_checked"
	StateFormatted        State = "formatted"
	StatePosted           State = "posted"
	StateSuppressed       State = "suppressed"
)

// suppression reasons, also the value of the metric tag
const (
	ReasonDuplicate          = "duplicate"
	ReasonInFlight           = "in_flight"
	ReasonNonPositivePrice   = "non_positive_price"
	ReasonNotPurchased       = "not_purchased"
	ReasonRateUnavailable    = "rate_unavailable"
	ReasonTxLogUnavailable   = "tx_log_unavailable"
	ReasonIdentityUnresolved = "identity_unresolved"
	ReasonCollectionDisabled = "collection_disabled"
	ReasonBelowThreshold     = "below_threshold"
	ReasonFormatFailed       = "format_failed"
	ReasonNothingToPost      = "nothing_to_post"
	ReasonPublishFailed      = "publish_failed"
)

// Outcome is where one event ended up
type Outcome struct {
	State  State
	Reason string
	// Posted maps consumer name to the id of the created post
	Posted map[string]string
}

type Consumer struct {
	Name      string
	Publisher domain.Publisher
}

type SalesBotConfig struct {
	Dedup      domain.DedupStore
	Price      domain.PriceUsecase
	Classifier domain.ClassifierUsecase
	Formatter  domain.FormatterUsecase
	TxLog      domain.TxLogFetcher
	Consumers  []Consumer
	Thresholds domain.ThresholdMatrix
	Enabled    []domain.Collection
	// LogAllEvents dumps every decoded event of each fetched transaction
	LogAllEvents bool
}

type SalesBotHandler struct {
	dedup        domain.DedupStore
	price        domain.PriceUsecase
	classifier   domain.ClassifierUsecase
	formatter    domain.FormatterUsecase
	txLog        domain.TxLogFetcher
	consumers    []Consumer
	thresholds   domain.ThresholdMatrix
	enabled      map[domain.Collection]bool
	logAllEvents bool

	inFlight sync.Map
	stats    *counter.Counter
	mtr      metrics.Service
}

func NewSalesBotHandler(cfg *SalesBotConfig) *SalesBotHandler {
	enabled := map[domain.Collection]bool{}
	for _, c := range cfg.Enabled {
		enabled[c] = true
	}
	return &SalesBotHandler{
		dedup:        cfg.Dedup,
		price:        cfg.Price,
		classifier:   cfg.Classifier,
		formatter:    cfg.Formatter,
		txLog:        cfg.TxLog,
		consumers:    cfg.Consumers,
		thresholds:   cfg.Thresholds,
		enabled:      enabled,
		logAllEvents: cfg.LogAllEvents,
		stats:        counter.NewCounter(),
		mtr:          metrics.New("salesbot"),
	}
}

// Stats returns the outcome counts since start, keyed by state or reason
func (h *SalesBotHandler) Stats() map[string]int {
	return h.stats.Snapshot()
}

// HandleEvent runs one sale event through to a post or a suppression
func (h *SalesBotHandler) HandleEvent(c ctx.Ctx, event *domain.ChainEvent) Outcome {
	c = ctx.WithValues(c, log.Fields{"txId": event.TransactionId, "eventType": event.Type})
	h.mtr.BumpSum("event.received", 1)
	h.stats.Add(string(StateReceived), 1)

	// no upstream call may happen before this check
	if posted, err := h.dedup.Has(c, event.TransactionId); err != nil {
		c.WithField("err", err).Warn("dedup.Has failed, continuing")
	} else if posted {
		return h.suppress(c, ReasonDuplicate)
	}
	if _, loaded := h.inFlight.LoadOrStore(event.TransactionId, struct{}{}); loaded {
		return h.suppress(c, ReasonInFlight)
	}
	defer h.inFlight.Delete(event.TransactionId)

	// PriceChecked
	kind, _ := domain.KindOf(event.Type)
	raw := rawPrice(event.Data)
	if !raw.IsPositive() {
		return h.suppress(c, ReasonNonPositivePrice)
	}
	if kind.RequiresPurchasedFlag() && event.Data["purchased"] != true {
		return h.suppress(c, ReasonNotPurchased)
	}
	rate, ok := h.price.GetRate(c)
	if !ok {
		return h.suppress(c, ReasonRateUnavailable)
	}
	price := h.price.ComputeDisplay(raw, paymentVault(event.Data), rate)
	h.transition(c, StatePriceChecked, log.Fields{"usd": price.UsdAmount.StringFixed(2), "display": price.DisplayString})

	// Classified
	class := h.classifier.Classify(event)
	h.transition(c, StateClassified, log.Fields{
		"assetType":   class.AssetType,
		"id":          class.AssetInstanceId,
		"marketplace": class.Marketplace,
		"kind":        class.Kind,
	})

	// IdentityResolved, the log is fetched once and shared with the formatter
	events, err := h.txLog.GetTransactionEvents(c, event.TransactionId)
	if err != nil {
		c.WithField("err", err).Error("txLog.GetTransactionEvents failed")
		return h.suppress(c, ReasonTxLogUnavailable)
	}
	if h.logAllEvents {
		dumpEvents(c, events)
	}
	identity := class.AssetIdentity
	if h.classifier.NeedsRefinement(identity) {
		identity = h.classifier.Refine(c, events, identity)
	}
	if !identity.HasType() || !identity.HasInstanceId() {
		c.WithFields(log.Fields{"assetType": identity.AssetType, "id": identity.AssetInstanceId}).Warn("asset identity unresolved")
		return h.suppress(c, ReasonIdentityUnresolved)
	}
	collection := domain.CollectionOf(identity.AssetType)
	h.transition(c, StateIdentityResolved, log.Fields{"assetType": identity.AssetType, "id": identity.AssetInstanceId, "collection": collection})

	if !h.enabled[collection] {
		return h.suppress(c, ReasonCollectionDisabled)
	}

	// ThresholdChecked
	passing := make([]Consumer, 0, len(h.consumers))
	for _, consumer := range h.consumers {
		threshold, ok := h.thresholds.Lookup(collection, consumer.Name)
		if !ok || !threshold.Exceeded(price.UsdAmount) {
			c.WithFields(log.Fields{"consumer": consumer.Name, "threshold": threshold.String()}).Debug("below threshold")
			continue
		}
		passing = append(passing, consumer)
	}
	if len(passing) == 0 {
		return h.suppress(c, ReasonBelowThreshold)
	}
	h.transition(c, StateThresholdChecked, log.Fields{"consumers": len(passing)})

	// Formatted, once for every passing consumer
	post, err := h.formatter.Format(c, collection, &domain.FormatContext{
		Event:        event,
		Log:          events,
		DisplayPrice: price.DisplayString,
		Marketplace:  class.Marketplace,
		Identity:     identity,
	})
	if err != nil {
		return h.suppress(c, ReasonFormatFailed)
	}
	if post == nil {
		return h.suppress(c, ReasonNothingToPost)
	}
	h.transition(c, StateFormatted, log.Fields{"title": post.Title})

	posted := map[string]string{}
	for _, consumer := range passing {
		id, err := consumer.Publisher.Post(c, post)
		if err != nil {
			h.mtr.BumpSum("post.err", 1, "consumer", consumer.Name)
			c.WithFields(log.Fields{"err": err, "consumer": consumer.Name}).Error("publisher.Post failed")
			continue
		}
		h.mtr.BumpSum("post.ok", 1, "consumer", consumer.Name)
		posted[consumer.Name] = id
	}
	if len(posted) == 0 {
		return h.suppress(c, ReasonPublishFailed)
	}

	if err := h.dedup.Add(c, event.TransactionId); err != nil {
		c.WithField("err", err).Error("dedup.Add failed")
	}
	h.stats.Add(string(StatePosted), 1)
	c.WithField("posted", posted).Info("sale posted")
	return Outcome{State: StatePosted, Posted: posted}
}

func (h *SalesBotHandler) transition(c ctx.Ctx, s State, fields log.Fields) {
	c.WithFields(fields).WithField("state", s).Debug("transition")
}

func (h *SalesBotHandler) suppress(c ctx.Ctx, reason string) Outcome {
	h.mtr.BumpSum("event.suppressed", 1, "reason", reason)
	h.stats.Add(string(StateSuppressed), 1)
	h.stats.Add(string(StateSuppressed)+"."+reason, 1)
	c.WithField("reason", reason).Info("sale suppressed")
	return Outcome{State: StateSuppressed, Reason: reason}
}

var priceFields = []string{"salePrice", "price", "offerAmount"}

// rawPrice is the sale amount in the payment currency, zero when absent or malformed
func rawPrice(data map[string]interface{}) decimal.Decimal {
	for _, f := range priceFields {
		s := cadence.ToString(data[f])
		if s == "" {
			continue
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	}
	return decimal.Zero
}

// paymentVault reads the vault type, a plain string or a decoded Type value
func paymentVault(data map[string]interface{}) string {
	for _, f := range []string{"salePaymentVaultType", "paymentVaultType"} {
		v := data[f]
		if s := cadence.ToString(v); s != "" {
			return s
		}
		if s := cadence.ToString(cadence.Lookup(v, "typeID")); s != "" {
			return s
		}
	}
	return ""
}

func dumpEvents(c ctx.Ctx, events domain.TxEventLog) {
	for i, ev := range events {
		l := c.WithField("index", i).WithField("type", ev.Type)
		if p, ok := cadence.DecodePayload(ev.Payload); ok {
			l = l.WithField("shape", p.Shape.String()).WithField("fields", p.Values())
		} else if strings.TrimSpace(ev.Payload) != "" {
			l = l.WithField("payload", ev.Payload)
		}
		l.Debug("tx event")
	}
}

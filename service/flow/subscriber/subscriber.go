// Package subscriber streams Flow events over the access node websocket.
package subscriber

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/base/backoff"
	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/goroutine"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/base/metrics"
	"github.com/x-xyz/salesbot/domain"
)

const (
	DefaultUrl = "wss://rest-mainnet.onflow.org/v1/ws"

	defaultPingInterval = 25 * time.Second
	defaultBackoffStep  = time.Second
	defaultBackoffLimit = time.Minute
	handshakeTimeout    = 10 * time.Second
	writeTimeout        = 5 * time.Second
)

var (
	ErrSubscriptionRejected = xerrors.New("subscription rejected")
	ErrMalformedEvent       = xerrors.New("malformed event")
)

var mtr = metrics.New("subscriber")

type Cfg struct {
	Url          string
	PingInterval time.Duration
	BackoffStep  time.Duration
	BackoffLimit time.Duration
	Header       http.Header
}

type subscriber struct {
	url          string
	pingInterval time.Duration
	backoffStep  time.Duration
	backoffLimit time.Duration
	header       http.Header
	dialer       *websocket.Dialer
}

func New(cfg *Cfg) domain.EventSource {
	s := &subscriber{
		url:          cfg.Url,
		pingInterval: cfg.PingInterval,
		backoffStep:  cfg.BackoffStep,
		backoffLimit: cfg.BackoffLimit,
		header:       cfg.Header,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
	}
	if s.url == "" {
		s.url = DefaultUrl
	}
	if s.pingInterval == 0 {
		s.pingInterval = defaultPingInterval
	}
	if s.backoffStep == 0 {
		s.backoffStep = defaultBackoffStep
	}
	if s.backoffLimit == 0 {
		s.backoffLimit = defaultBackoffLimit
	}
	return s
}

type subscribeRequest struct {
	SubscriptionId string            `json:"subscription_id"`
	Action         string            `json:"action"`
	Topic          string            `json:"topic"`
	Arguments      subscribeArgument `json:"arguments"`
}

type subscribeArgument struct {
	EventTypes []string `json:"event_types"`
}

type message struct {
	SubscriptionId string          `json:"subscription_id"`
	Topic          string          `json:"topic"`
	Action         string          `json:"action"`
	Payload        json.RawMessage `json:"payload"`
	Error          *messageError   `json:"error"`
}

type messageError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type eventsPayload struct {
	BlockId     string           `json:"block_id"`
	BlockHeight string           `json:"block_height"`
	Events      []domain.TxEvent `json:"events"`
}

// Subscribe keeps a subscription open until c is done, reconnecting with an
// exponential backoff after every failure
func (s *subscriber) Subscribe(c ctx.Ctx, eventTypes []string, onEvent func(*domain.ChainEvent), onError func(error)) error {
	bo := backoff.NewExponential(s.backoffStep, s.backoffLimit)
	for {
		delivered, err := s.session(c, eventTypes, onEvent, onError)
		if c.Err() != nil {
			return nil
		}
		if delivered {
			bo.Reset()
		}
		mtr.BumpSum("reconnect", 1)
		c.WithFields(log.Fields{
			"err":     err,
			"attempt": bo.Attempts(),
			"wait":    bo.Next(),
		}).Warn("event stream lost, reconnecting")
		onError(err)
		if err := bo.Backoff(c); err != nil {
			return nil
		}
	}
}

// session runs one connection, delivered reports whether any message arrived
func (s *subscriber) session(c ctx.Ctx, eventTypes []string, onEvent func(*domain.ChainEvent), onError func(error)) (delivered bool, err error) {
	conn, _, err := s.dialer.DialContext(c, s.url, s.header)
	if err != nil {
		return false, err
	}
	defer conn.Close()

	subId := uuid.NewString()
	if err := conn.WriteJSON(subscribeRequest{
		SubscriptionId: subId,
		Action:         "subscribe",
		Topic:          "events",
		Arguments:      subscribeArgument{EventTypes: eventTypes},
	}); err != nil {
		return false, err
	}
	c.WithField("subscriptionId", subId).WithField("eventTypes", eventTypes).Info("subscribed")

	done := make(chan struct{})
	defer close(done)
	goroutine.RecoverableGo(func() {
		s.keepAlive(c, conn, done)
	}, goroutine.WithName("subscriber.keepAlive"))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return delivered, err
		}
		delivered = true

		msg := message{}
		if err := json.Unmarshal(data, &msg); err != nil {
			onError(xerrors.Errorf("unmarshal message: %w", err))
			continue
		}
		if msg.Error != nil {
			return delivered, xerrors.Errorf("%d %s: %w", msg.Error.Code, msg.Error.Message, ErrSubscriptionRejected)
		}
		if msg.Topic != "events" || len(msg.Payload) == 0 {
			continue
		}

		payload := eventsPayload{}
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			onError(xerrors.Errorf("unmarshal events: %w", err))
			continue
		}
		for _, ev := range payload.Events {
			event, err := toChainEvent(ev)
			if err != nil {
				onError(err)
				continue
			}
			mtr.BumpSum("event", 1)
			onEvent(event)
		}
	}
}

// keepAlive pings the node and closes conn once c is done so ReadMessage returns
func (s *subscriber) keepAlive(c ctx.Ctx, conn *websocket.Conn, done chan struct{}) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-c.Done():
			conn.Close()
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				c.WithField("err", err).Warn("ping failed")
				conn.Close()
				return
			}
		}
	}
}

func toChainEvent(ev domain.TxEvent) (*domain.ChainEvent, error) {
	v, err := cadence.DecodeBase64(ev.Payload)
	if err != nil {
		return nil, xerrors.Errorf("%s in %s: %v: %w", ev.Type, ev.TransactionId, err, ErrMalformedEvent)
	}
	data, ok := v.(map[string]interface{})
	if !ok {
		return nil, xerrors.Errorf("%s in %s: %w", ev.Type, ev.TransactionId, ErrMalformedEvent)
	}
	return &domain.ChainEvent{
		TransactionId: ev.TransactionId,
		Type:          ev.Type,
		Data:          data,
	}, nil
}

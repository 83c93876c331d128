package subscriber

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	ct "github.com/x-xyz/salesbot/base/cadence/cadencetest"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/domain"
)

const listingCompleted = "A.4eb8a10cb9f87357.NFTStorefrontV2.ListingCompleted"

type subscriberSuite struct {
	suite.Suite

	upgrader websocket.Upgrader
	conns    int32
	requests chan subscribeRequest
	// serve runs once per accepted connection, n counts from 1
	serve func(n int32, conn *websocket.Conn)

	server *httptest.Server
	events chan *domain.ChainEvent
	errs   chan error
}

func TestSubscriber(t *testing.T) {
	suite.Run(t, new(subscriberSuite))
}

func (s *subscriberSuite) SetupTest() {
	atomic.StoreInt32(&s.conns, 0)
	s.requests = make(chan subscribeRequest, 4)
	s.events = make(chan *domain.ChainEvent, 4)
	s.errs = make(chan error, 4)
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		req := subscribeRequest{}
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		s.requests <- req
		s.serve(atomic.AddInt32(&s.conns, 1), conn)
	}))
}

func (s *subscriberSuite) TearDownTest() {
	s.server.Close()
}

func (s *subscriberSuite) run() (ctx.Ctx, func(), chan error) {
	c, cancel := ctx.WithCancel(ctx.Background())
	im := New(&Cfg{
		Url:         "ws" + strings.TrimPrefix(s.server.URL, "http"),
		BackoffStep: 10 * time.Millisecond,
	})
	ret := make(chan error, 1)
	go func() {
		ret <- im.Subscribe(c, domain.SaleEventTypes,
			func(e *domain.ChainEvent) { s.events <- e },
			func(err error) { s.errs <- err },
		)
	}()
	return c, cancel, ret
}

// drain blocks until the client goes away
func drain(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func eventsMessage(events ...map[string]string) map[string]interface{} {
	return map[string]interface{}{
		"subscription_id": "sub",
		"topic":           "events",
		"payload":         map[string]interface{}{"block_height": "1", "events": events},
	}
}

func (s *subscriberSuite) TestDeliversEvents() {
	payload := ct.Event(listingCompleted,
		ct.F("nftID", ct.UInt64("42")),
		ct.F("purchased", ct.Bool(true)),
	)
	s.serve = func(n int32, conn *websocket.Conn) {
		_ = conn.WriteJSON(map[string]interface{}{"subscription_id": "sub", "action": "subscribe"})
		_ = conn.WriteJSON(eventsMessage(
			map[string]string{"type": listingCompleted, "transaction_id": "tx1", "payload": "!!"},
			map[string]string{"type": listingCompleted, "transaction_id": "tx2", "payload": payload},
		))
		drain(conn)
	}
	_, cancel, ret := s.run()

	req := <-s.requests
	s.Equal("subscribe", req.Action)
	s.Equal("events", req.Topic)
	s.Equal(domain.SaleEventTypes, req.Arguments.EventTypes)
	s.NotEmpty(req.SubscriptionId)

	select {
	case err := <-s.errs:
		s.ErrorIs(err, ErrMalformedEvent)
	case <-time.After(5 * time.Second):
		s.Fail("no error for the malformed event")
	}
	select {
	case e := <-s.events:
		s.Equal("tx2", e.TransactionId)
		s.Equal(listingCompleted, e.Type)
		s.Equal("42", e.Data["nftID"])
		s.Equal(true, e.Data["purchased"])
	case <-time.After(5 * time.Second):
		s.Fail("event not delivered")
	}

	cancel()
	select {
	case err := <-ret:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("Subscribe did not return after cancel")
	}
}

func (s *subscriberSuite) TestReconnectsAfterRejection() {
	s.serve = func(n int32, conn *websocket.Conn) {
		if n == 1 {
			_ = conn.WriteJSON(map[string]interface{}{"error": map[string]interface{}{"code": 400, "message": "bad"}})
			drain(conn)
			return
		}
		_ = conn.WriteJSON(eventsMessage(map[string]string{
			"type":           listingCompleted,
			"transaction_id": "tx3",
			"payload":        ct.Event(listingCompleted, ct.F("nftID", ct.UInt64("1"))),
		}))
		drain(conn)
	}
	_, cancel, ret := s.run()
	defer func() {
		cancel()
		<-ret
	}()

	select {
	case err := <-s.errs:
		s.ErrorIs(err, ErrSubscriptionRejected)
	case <-time.After(5 * time.Second):
		s.Fail("rejection not reported")
	}
	select {
	case e := <-s.events:
		s.Equal("tx3", e.TransactionId)
	case <-time.After(5 * time.Second):
		s.Fail("no event after reconnect")
	}
	s.Equal(int32(2), atomic.LoadInt32(&s.conns))
}

func TestToChainEventRejectsNonComposite(t *testing.T) {
	_, err := toChainEvent(domain.TxEvent{Type: listingCompleted, Payload: ct.Encode(ct.String("x"))})
	require.ErrorIs(t, err, ErrMalformedEvent)
}

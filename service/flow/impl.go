package flow

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/base/cadence"
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/base/metrics"
	"github.com/x-xyz/salesbot/domain"
)

var mtr = metrics.New("flow")

type client struct {
	client  http.Client
	api     string
	timeout time.Duration
}

func NewClient(cfg *ClientCfg) Client {
	node := cfg.AccessNode
	if node == "" {
		node = DefaultAccessNode
	}
	return &client{
		client:  cfg.HttpClient,
		api:     strings.TrimRight(node, "/") + "/v1",
		timeout: cfg.Timeout,
	}
}

func (c *client) ExecuteScript(bc ctx.Ctx, script []byte, args ...cadence.Raw) (interface{}, error) {
	defer mtr.BumpTime("script.latency").End()

	req := scriptRequest{
		Script:    base64.StdEncoding.EncodeToString(script),
		Arguments: make([]string, 0, len(args)),
	}
	for _, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return nil, err
		}
		req.Arguments = append(req.Arguments, base64.StdEncoding.EncodeToString(b))
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	data, err := c.do(bc, http.MethodPost, c.api+"/scripts?block_height=sealed", body)
	if err != nil {
		mtr.BumpSum("script.err", 1)
		return nil, err
	}

	// the result is a JSON string holding base64 JSON-Cadence
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		bc.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	v, err := cadence.DecodeBase64(encoded)
	if err != nil {
		bc.WithField("err", err).Error("cadence.DecodeBase64 failed")
		return nil, err
	}
	return v, nil
}

func (c *client) GetTransactionEvents(bc ctx.Ctx, txId string) (domain.TxEventLog, error) {
	defer mtr.BumpTime("tx_result.latency").End()

	data, err := c.do(bc, http.MethodGet, fmt.Sprintf("%s/transaction_results/%s", c.api, txId), nil)
	if err != nil {
		mtr.BumpSum("tx_result.err", 1)
		return nil, err
	}
	res := transactionResult{}
	if err := json.Unmarshal(data, &res); err != nil {
		bc.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	for i := range res.Events {
		if res.Events[i].TransactionId == "" {
			res.Events[i].TransactionId = txId
		}
	}
	return res.Events, nil
}

func (c *client) GetTransactionArguments(bc ctx.Ctx, txId string) ([]string, error) {
	defer mtr.BumpTime("tx.latency").End()

	data, err := c.do(bc, http.MethodGet, fmt.Sprintf("%s/transactions/%s", c.api, txId), nil)
	if err != nil {
		mtr.BumpSum("tx.err", 1)
		return nil, err
	}
	res := transaction{}
	if err := json.Unmarshal(data, &res); err != nil {
		bc.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return res.Arguments, nil
}

func (c *client) do(bc ctx.Ctx, method, url string, body []byte) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		bc, cancel = ctx.WithTimeout(bc, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(bc, method, url, reader)
	if err != nil {
		bc.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		bc.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		bc.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		bc.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
			"body":       string(data),
		}).Error("resp.StatusCode != 200")
		return nil, xerrors.Errorf("%s %s: %d: %w", method, url, resp.StatusCode, domain.ErrStatusCodeNotOk)
	}
	return data, nil
}

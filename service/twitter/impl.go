package twitter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/dghubble/oauth1"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/base/metrics"
	"github.com/x-xyz/salesbot/domain"
)

var (
	ErrNotImage      = xerrors.New("fetched content is not an image")
	ErrImageTooLarge = xerrors.New("image too large")
)

var mtr = metrics.New("twitter")

type client struct {
	name      string
	api       *http.Client
	images    *http.Client
	apiUrl    string
	uploadUrl string
}

func New(cfg *ClientCfg) domain.Publisher {
	config := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
	api := config.Client(context.Background(), token)
	api.Timeout = cfg.Timeout

	images := cfg.ImageClient
	if images == nil {
		images = &http.Client{Timeout: cfg.Timeout}
	}
	c := &client{
		name:      cfg.Name,
		api:       api,
		images:    images,
		apiUrl:    strings.TrimRight(cfg.ApiUrl, "/"),
		uploadUrl: strings.TrimRight(cfg.UploadUrl, "/"),
	}
	if c.apiUrl == "" {
		c.apiUrl = DefaultApiUrl
	}
	if c.uploadUrl == "" {
		c.uploadUrl = DefaultUploadUrl
	}
	return c
}

func (c *client) Name() string {
	return c.name
}

func (c *client) Verify(bc ctx.Ctx) error {
	data, err := c.do(bc, http.MethodGet, c.apiUrl+"/2/users/me", "", nil)
	if err != nil {
		return err
	}
	res := userResponse{}
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}
	bc.WithFields(log.Fields{"publisher": c.name, "username": res.Data.Username}).Info("twitter credentials verified")
	return nil
}

// Post uploads the image when there is one and tweets. A failed image
// fetch or upload degrades to a text-only tweet.
func (c *client) Post(bc ctx.Ctx, post *domain.Post) (string, error) {
	req := tweetRequest{Text: post.Text}
	if post.ImageUrl != "" {
		if mediaId, err := c.uploadImage(bc, post.ImageUrl); err != nil {
			bc.WithFields(log.Fields{
				"err":       err,
				"publisher": c.name,
				"imageUrl":  post.ImageUrl,
			}).Warn("image upload failed, posting text only")
			mtr.BumpSum("media.err", 1)
		} else {
			req.Media = &tweetMedia{MediaIds: []string{mediaId}}
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	data, err := c.do(bc, http.MethodPost, c.apiUrl+"/2/tweets", "application/json", body)
	if err != nil {
		mtr.BumpSum("tweet.err", 1)
		return "", err
	}
	res := tweetResponse{}
	if err := json.Unmarshal(data, &res); err != nil {
		return "", err
	}
	bc.WithFields(log.Fields{
		"publisher": c.name,
		"tweetId":   res.Data.Id,
		"withMedia": req.Media != nil,
	}).Info("tweet posted")
	return res.Data.Id, nil
}

func (c *client) uploadImage(bc ctx.Ctx, url string) (string, error) {
	defer mtr.BumpTime("media.latency").End()

	img, err := c.fetchImage(bc, url)
	if err != nil {
		return "", err
	}

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("media", "image")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(img); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	data, err := c.do(bc, http.MethodPost, c.uploadUrl+"/1.1/media/upload.json", w.FormDataContentType(), buf.Bytes())
	if err != nil {
		return "", err
	}
	res := mediaResponse{}
	if err := json.Unmarshal(data, &res); err != nil {
		return "", err
	}
	if res.MediaIdString == "" {
		return "", xerrors.New("empty media id")
	}
	return res.MediaIdString, nil
}

func (c *client) fetchImage(bc ctx.Ctx, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(bc, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.images.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, xerrors.Errorf("fetch %s: %d: %w", url, resp.StatusCode, domain.ErrStatusCodeNotOk)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxImageSize {
		return nil, ErrImageTooLarge
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, xerrors.Errorf("%s: %w", mtype.String(), ErrNotImage)
	}
	return data, nil
}

func (c *client) do(bc ctx.Ctx, method, url, contentType string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(bc, method, url, reader)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.api.Do(req)
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
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bc.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
			"body":       string(data),
		}).Error("unexpected status code")
		return nil, xerrors.Errorf("%s %s: %d: %w", method, url, resp.StatusCode, domain.ErrStatusCodeNotOk)
	}
	return data, nil
}

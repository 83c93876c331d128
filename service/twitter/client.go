// Package twitter posts sales with OAuth 1.0a user context credentials.
package twitter

import (
	"net/http"
	"time"
)

const (
	DefaultApiUrl    = "https://api.twitter.com"
	DefaultUploadUrl = "https://upload.twitter.com"

	// maxImageSize is the upload limit of the simple media endpoint
	maxImageSize = 5 * 1024 * 1024
)

type ClientCfg struct {
	// Name identifies the account in logs and config
	Name           string `mapstructure:"name" validate:"required"`
	ConsumerKey    string `mapstructure:"consumer_key" validate:"required"`
	ConsumerSecret string `mapstructure:"consumer_secret" validate:"required"`
	AccessToken    string `mapstructure:"access_token" validate:"required"`
	AccessSecret   string `mapstructure:"access_secret" validate:"required"`

	ApiUrl    string        `mapstructure:"api_url"`
	UploadUrl string        `mapstructure:"upload_url"`
	Timeout   time.Duration `mapstructure:"timeout"`

	// ImageClient fetches images, nil uses a plain client with Timeout
	ImageClient *http.Client `mapstructure:"-"`
}

type tweetRequest struct {
	Text  string      `json:"text"`
	Media *tweetMedia `json:"media,omitempty"`
}

type tweetMedia struct {
	MediaIds []string `json:"media_ids"`
}

type tweetResponse struct {
	Data struct {
		Id   string `json:"id"`
		Text string `json:"text"`
	} `json:"data"`
}

type userResponse struct {
	Data struct {
		Id       string `json:"id"`
		Username string `json:"username"`
	} `json:"data"`
}

type mediaResponse struct {
	MediaIdString string `json:"media_id_string"`
}

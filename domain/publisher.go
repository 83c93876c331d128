package domain

import "github.com/x-xyz/salesbot/base/ctx"

// Publisher posts a sale summary and returns the id of the created post
type Publisher interface {
	Name() string
	// Verify checks the credentials, called once at startup
	Verify(c ctx.Ctx) error
	Post(c ctx.Ctx, post *Post) (string, error)
}

// Package discord posts sales as channel embeds.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/xerrors"

	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/domain"
)

type Cfg struct {
	Name      string `mapstructure:"name" validate:"required"`
	BotKey    string `mapstructure:"bot_key" validate:"required"`
	ChannelId string `mapstructure:"channel_id" validate:"required"`
}

// session is the part of *discordgo.Session the publisher uses
type session interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
	User(userID string) (*discordgo.User, error)
}

type publisher struct {
	name      string
	channelId string
	discord   session
}

func New(cfg *Cfg) (domain.Publisher, error) {
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.BotKey))
	if err != nil {
		return nil, xerrors.Errorf("discordgo.New: %w", err)
	}
	return newPublisher(cfg, discord), nil
}

func newPublisher(cfg *Cfg, s session) *publisher {
	return &publisher{name: cfg.Name, channelId: cfg.ChannelId, discord: s}
}

func (p *publisher) Name() string {
	return p.name
}

func (p *publisher) Verify(c ctx.Ctx) error {
	u, err := p.discord.User("@me")
	if err != nil {
		return err
	}
	c.WithFields(log.Fields{"publisher": p.name, "user": u.Username}).Info("discord credentials verified")
	return nil
}

func (p *publisher) Post(c ctx.Ctx, post *domain.Post) (string, error) {
	title := post.Title
	if title == "" {
		title = "Item sold!"
	}
	msg := &discordgo.MessageEmbed{
		Title:       title,
		URL:         post.Link,
		Description: post.Text,
	}
	if post.ImageUrl != "" {
		msg.Image = &discordgo.MessageEmbedImage{URL: post.ImageUrl}
	}

	m, err := p.discord.ChannelMessageSendEmbed(p.channelId, msg)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "publisher": p.name}).Error("discord.ChannelMessageSendEmbed failed")
		return "", err
	}
	return m.ID, nil
}

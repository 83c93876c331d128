package usecase

import (
	"github.com/x-xyz/salesbot/base/ctx"
	"github.com/x-xyz/salesbot/base/log"
	"github.com/x-xyz/salesbot/domain"
)

type impl struct {
	formatters map[domain.Collection]domain.Formatter
	fallback   domain.Formatter
}

type Cfg struct {
	Query    domain.ChainQuery
	TxLog    domain.TxLogFetcher
	Identity domain.IdentityUsecase
}

func New(cfg *Cfg) domain.FormatterUsecase {
	b := &base{query: cfg.Query, txLog: cfg.TxLog, identity: cfg.Identity}
	return &impl{
		formatters: map[domain.Collection]domain.Formatter{
			domain.CollectionTopShotMoment: &topShot{b},
			domain.CollectionTopShotPack:   &pack{b},
			domain.CollectionNflPack:       &pack{b},
			domain.CollectionNflAllDay:     &allDay{b},
			domain.CollectionHotWheels:     &hotWheels{b},
			domain.CollectionPinnacle:      &pinnacle{b},
		},
		fallback: &generic{b},
	}
}

func (im *impl) Format(c ctx.Ctx, collection domain.Collection, fc *domain.FormatContext) (*domain.Post, error) {
	f, ok := im.formatters[collection]
	if !ok {
		f = im.fallback
	}

	post, err := f.Format(c, fc)
	if err != nil {
		c.WithFields(log.Fields{
			"err":        err,
			"collection": collection,
			"txId":       fc.Event.TransactionId,
		}).Error("formatter.Format failed")
		return nil, err
	}
	return post, nil
}

package seed

import (
	"context"
	"fmt"

	"marketplace/models"

	"go.uber.org/zap"
)

// Inserter вставляет пачку записей одной транзакцией
type Inserter[T any] interface {
	InsertAll(ctx context.Context, recs []T) error
}

// Recorder получает число загруженных записей по типам
type Recorder interface {
	RecordSeeded(entity string, n int)
}

// Loader загружает сид-данные в пустую схему.
// Повторный запуск на заполненной БД упадет на конфликте первичного ключа.
type Loader struct {
	users   Inserter[models.User]
	offers  Inserter[models.Offer]
	orders  Inserter[models.Order]
	log     *zap.Logger
	metrics Recorder
}

func NewLoader(users Inserter[models.User], offers Inserter[models.Offer], orders Inserter[models.Order], log *zap.Logger, metrics Recorder) *Loader {
	return &Loader{users: users, offers: offers, orders: orders, log: log, metrics: metrics}
}

// Load вставляет пользователей, затем предложения, затем заказы.
// Каждый тип - своя транзакция: ошибка откатывает только текущий тип,
// уже загруженные типы остаются, следующие не загружаются.
func (l *Loader) Load(ctx context.Context, b *Batch) error {
	if err := insert(ctx, l, "users", l.users, b.Users); err != nil {
		return err
	}
	if err := insert(ctx, l, "offers", l.offers, b.Offers); err != nil {
		return err
	}
	return insert(ctx, l, "orders", l.orders, b.Orders)
}

func insert[T any](ctx context.Context, l *Loader, entity string, ins Inserter[T], recs []T) error {
	if err := ins.InsertAll(ctx, recs); err != nil {
		return fmt.Errorf("seed %s: %w", entity, err)
	}
	l.metrics.RecordSeeded(entity, len(recs))
	l.log.Info("seed data loaded", zap.String("entity", entity), zap.Int("count", len(recs)))
	return nil
}

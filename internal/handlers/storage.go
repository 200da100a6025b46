package handlers

import (
	"context"

	"marketplace/models"
)

// Repository - общий контракт хранилища для одного типа сущности.
// GetByID, Update и Delete возвращают models.ErrNotFound, если записи нет;
// Create возвращает models.ErrDuplicateID при занятом id.
type Repository[T any] interface {
	Create(ctx context.Context, rec *T) error
	GetByID(ctx context.Context, id int) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id int) error
}

type (
	UserRepository  = Repository[models.User]
	OrderRepository = Repository[models.Order]
	OfferRepository = Repository[models.Offer]
)

package db

import (
	"marketplace/models"

	"github.com/jmoiron/sqlx"
)

var (
	userColumns  = []string{"id", "first_name", "last_name", "age", "email", "phone", "role"}
	orderColumns = []string{"id", "name", "description", "address", "start_date", "end_date", "price", "customer_id", "executor_id"}
	offerColumns = []string{"id", "order_id", "executor_id"}
)

func NewUserTable(db *sqlx.DB) *Table[models.User] {
	return NewTable[models.User](db, "users", userColumns)
}

func NewOrderTable(db *sqlx.DB) *Table[models.Order] {
	return NewTable[models.Order](db, "orders", orderColumns)
}

func NewOfferTable(db *sqlx.DB) *Table[models.Offer] {
	return NewTable[models.Offer](db, "offers", offerColumns)
}

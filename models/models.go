package models

// Сущность Пользователя
type User struct {
	ID        int    `db:"id" json:"id"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Age       int    `db:"age" json:"age"`
	Email     string `db:"email" json:"email"`
	Phone     string `db:"phone" json:"phone"`
	Role      string `db:"role" json:"role"` // "customer", "executor" и т.п., не проверяется
}

// Сущность Заказа
type Order struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Address     string `db:"address" json:"address"`
	StartDate   Date   `db:"start_date" json:"start_date"`
	EndDate     Date   `db:"end_date" json:"end_date"`
	Price       int    `db:"price" json:"price"`
	CustomerID  int    `db:"customer_id" json:"customer_id"` // ссылка на User, не проверяется
	ExecutorID  int    `db:"executor_id" json:"executor_id"` // ссылка на User, не проверяется
}

// Сущность Предложения (отклик исполнителя на заказ)
type Offer struct {
	ID         int `db:"id" json:"id"`
	OrderID    int `db:"order_id" json:"order_id"`
	ExecutorID int `db:"executor_id" json:"executor_id"`
}

package handlers

import (
	"net/http"

	"marketplace/models"
)

// ListOrdersHandler обрабатывает GET /orders
func (h *Handler) ListOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// CreateOrderHandler обрабатывает POST /orders. Даты в формате MM/DD/YYYY,
// существование customer_id и executor_id не проверяется.
func (h *Handler) CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var input models.NewOrder
	if !h.decodeBody(w, r, &input) {
		return
	}

	order, err := input.ToModel()
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Orders.Create(r.Context(), &order); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetOrderHandler обрабатывает GET /orders/{id}
func (h *Handler) GetOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	order, err := h.Orders.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateOrderHandler обрабатывает PUT /orders/{id}
func (h *Handler) UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input models.OrderFields
	if !h.decodeBody(w, r, &input) {
		return
	}

	order, err := input.ToModel(id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if err := h.Orders.Update(r.Context(), &order); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteOrderHandler обрабатывает DELETE /orders/{id}
func (h *Handler) DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Orders.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

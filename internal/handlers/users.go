package handlers

import (
	"net/http"

	"marketplace/models"
)

// ListUsersHandler обрабатывает GET /users
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// CreateUserHandler обрабатывает POST /users, id передается клиентом
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var input models.NewUser
	if !h.decodeBody(w, r, &input) {
		return
	}

	user := input.ToModel()
	if err := h.Users.Create(r.Context(), &user); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GetUserHandler обрабатывает GET /users/{id}
func (h *Handler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	user, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateUserHandler обрабатывает PUT /users/{id}: нужны все поля
func (h *Handler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input models.UserFields
	if !h.decodeBody(w, r, &input) {
		return
	}

	user := input.ToModel(id)
	if err := h.Users.Update(r.Context(), &user); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteUserHandler обрабатывает DELETE /users/{id}.
// Заказы и предложения, ссылающиеся на пользователя, не трогаются.
func (h *Handler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

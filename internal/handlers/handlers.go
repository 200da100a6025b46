package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"marketplace/models"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// Handler держит репозитории всех сущностей
type Handler struct {
	Users  UserRepository
	Orders OrderRepository
	Offers OfferRepository
	log    *zap.Logger
}

// NewHandler создает новый Handler
func NewHandler(users UserRepository, orders OrderRepository, offers OfferRepository, log *zap.Logger) *Handler {
	return &Handler{Users: users, Orders: orders, Offers: offers, log: log}
}

// Register вешает маршруты всех сущностей на роутер
func (h *Handler) Register(r chi.Router) {
	r.Get("/ping", h.PingHandler)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsersHandler)
		r.Post("/", h.CreateUserHandler)
		r.Get("/{id}", h.GetUserHandler)
		r.Put("/{id}", h.UpdateUserHandler)
		r.Delete("/{id}", h.DeleteUserHandler)
	})
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrdersHandler)
		r.Post("/", h.CreateOrderHandler)
		r.Get("/{id}", h.GetOrderHandler)
		r.Put("/{id}", h.UpdateOrderHandler)
		r.Delete("/{id}", h.DeleteOrderHandler)
	})
	r.Route("/offers", func(r chi.Router) {
		r.Get("/", h.ListOffersHandler)
		r.Post("/", h.CreateOfferHandler)
		r.Get("/{id}", h.GetOfferHandler)
		r.Put("/{id}", h.UpdateOfferHandler)
		r.Delete("/{id}", h.DeleteOfferHandler)
	})
}

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// decodeBody читает JSON-тело в payload и проверяет обязательные поля.
// При ошибке сам пишет ответ 400 и возвращает false.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, payload any) bool {
	// Ограничение размера тела
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Failed to read request body")
		return false
	}
	if err := json.Unmarshal(body, payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid JSON format")
		return false
	}
	if err := models.Validate(payload); err != nil {
		h.handleError(w, r, err)
		return false
	}
	return true
}

// pathID достает целочисленный {id} из пути
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "id must be an integer")
		return 0, false
	}
	return id, true
}

// handleError переводит ошибки модели в HTTP-статусы
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		parseErr   *models.ParseError
		missingErr *models.MissingFieldError
	)
	switch {
	case errors.As(err, &missingErr):
		writeError(w, http.StatusBadRequest, "missing_field", missingErr.Error())
	case errors.As(err, &parseErr):
		writeError(w, http.StatusBadRequest, "invalid_date", parseErr.Error())
	case errors.Is(err, models.ErrValueTooLong):
		writeError(w, http.StatusBadRequest, "value_too_long", err.Error())
	case errors.Is(err, models.ErrValueOutOfRange):
		writeError(w, http.StatusBadRequest, "value_out_of_range", err.Error())
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Record not found")
	case errors.Is(err, models.ErrDuplicateID):
		writeError(w, http.StatusConflict, "duplicate_id", "Record with this id already exists")
	default:
		h.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal", "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: code, Message: message})
}

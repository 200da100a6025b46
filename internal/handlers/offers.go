package handlers

import (
	"net/http"

	"marketplace/models"
)

func (h *Handler) ListOffersHandler(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Offers.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *Handler) CreateOfferHandler(w http.ResponseWriter, r *http.Request) {
	var input models.NewOffer
	if !h.decodeBody(w, r, &input) {
		return
	}

	offer := input.ToModel()
	if err := h.Offers.Create(r.Context(), &offer); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetOfferHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	offer, err := h.Offers.GetByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

// UpdateOfferHandler обрабатывает PUT /offers/{id}: order_id и executor_id обязательны
func (h *Handler) UpdateOfferHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var input models.OfferFields
	if !h.decodeBody(w, r, &input) {
		return
	}

	offer := input.ToModel(id)
	if err := h.Offers.Update(r.Context(), &offer); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteOfferHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.Offers.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

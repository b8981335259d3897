package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/store"
)

type ProductHandler struct {
	catalog *store.Catalog
}

func NewProductHandler(catalog *store.Catalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type ProductListResponse struct {
	Success  bool             `json:"success"`
	Products []entity.Product `json:"products"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products(r.Context())
	writeJSON(w, http.StatusOK, ProductListResponse{Success: true, Products: products})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var product entity.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "Invalid JSON"})
		return
	}
	if product.Title == "" || product.Price == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Success: false, Message: "title and price are required"})
		return
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}

	products := h.catalog.SaveProduct(r.Context(), &product)
	writeJSON(w, http.StatusCreated, ProductListResponse{Success: true, Products: products})
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.DeleteProduct(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, ProductListResponse{Success: true, Products: products})
}

package handler

import (
	"errors"
	"net/http"

	"github.com/taskvault/taskvault-api/internal/http/response"
	"github.com/taskvault/taskvault-api/internal/service"
)

// Defaults applied when the JSON-field query omits its filters.
const (
	defaultFilterColor = "pink"
	defaultFilterSize  = "M"
)

type ProductHandler struct {
	productSvc service.ProductServiceInterface
}

func NewProductHandler(productSvc service.ProductServiceInterface) *ProductHandler {
	return &ProductHandler{productSvc: productSvc}
}

type createProductRequest struct {
	Name       string         `json:"name" validate:"required,max=255"`
	Properties map[string]any `json:"properties" validate:"required"`
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	product, err := h.productSvc.Create(req.Name, req.Properties)
	if errors.Is(err, service.ErrProductNameRequired) {
		response.Error(w, r, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		return
	}
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to create product", nil)
		return
	}
	response.JSON(w, r, http.StatusCreated, product)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.productSvc.List(pageFromQuery(r))
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to list products", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, products)
}

// FindByProperties filters products on fields inside the JSON properties
// column. The color filter matches a scalar, size matches an element of
// the sizes array.
func (h *ProductHandler) FindByProperties(w http.ResponseWriter, r *http.Request) {
	color := r.URL.Query().Get("color")
	if color == "" {
		color = defaultFilterColor
	}
	size := r.URL.Query().Get("size")
	if size == "" {
		size = defaultFilterSize
	}

	products, err := h.productSvc.FindByProperties(color, size)
	if err != nil {
		response.Error(w, r, http.StatusInternalServerError, "INTERNAL", "failed to query products", nil)
		return
	}
	response.JSON(w, r, http.StatusOK, products)
}

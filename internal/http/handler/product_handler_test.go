package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
)

type stubProductService struct {
	products []domain.Product
	err      error

	gotName  string
	gotColor string
	gotSize  string
}

func (s *stubProductService) Create(name string, properties map[string]any) (*domain.Product, error) {
	s.gotName = name
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Product{ID: 1, Name: name}, nil
}

func (s *stubProductService) List(repository.PageRequest) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductService) FindByProperties(color, size string) ([]domain.Product, error) {
	s.gotColor = color
	s.gotSize = size
	return s.products, s.err
}

func TestProductHandlerCreate(t *testing.T) {
	stub := &stubProductService{}
	h := NewProductHandler(stub)

	rec := httptest.NewRecorder()
	h.Create(rec, httptest.NewRequest(http.MethodPost, "/v1/api/createProducts", strings.NewReader(
		`{"name":"basic tee","properties":{"color":"pink","size":["S","M"]}}`)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if stub.gotName != "basic tee" {
		t.Fatalf("service got name %q", stub.gotName)
	}
}

func TestProductHandlerFindByProperties(t *testing.T) {
	t.Run("uses query filters", func(t *testing.T) {
		stub := &stubProductService{products: []domain.Product{{ID: 1, Name: "hoodie"}}}
		h := NewProductHandler(stub)

		rec := httptest.NewRecorder()
		h.FindByProperties(rec, httptest.NewRequest(http.MethodGet,
			"/v1/api/getProductWithJsonField?color=black&size=L", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.gotColor != "black" || stub.gotSize != "L" {
			t.Fatalf("filters = %q/%q, want black/L", stub.gotColor, stub.gotSize)
		}
	})

	t.Run("falls back to pink M defaults", func(t *testing.T) {
		stub := &stubProductService{}
		h := NewProductHandler(stub)

		rec := httptest.NewRecorder()
		h.FindByProperties(rec, httptest.NewRequest(http.MethodGet, "/v1/api/getProductWithJsonField", nil))

		if stub.gotColor != "pink" || stub.gotSize != "M" {
			t.Fatalf("filters = %q/%q, want pink/M", stub.gotColor, stub.gotSize)
		}
	})
}

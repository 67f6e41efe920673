package service

import (
	"errors"

	"gorm.io/datatypes"

	"github.com/taskvault/taskvault-api/internal/domain"
	"github.com/taskvault/taskvault-api/internal/repository"
)

var ErrProductNameRequired = errors.New("product name is required")

type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

func (s *ProductService) Create(name string, properties map[string]any) (*domain.Product, error) {
	if name == "" {
		return nil, ErrProductNameRequired
	}
	product := &domain.Product{Name: name, Properties: datatypes.JSONMap(properties)}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) List(req repository.PageRequest) ([]domain.Product, error) {
	return s.productRepo.List(req)
}

func (s *ProductService) FindByProperties(color, size string) ([]domain.Product, error) {
	return s.productRepo.FindByProperties(color, size)
}

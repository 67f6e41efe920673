package repository

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/taskvault/taskvault-api/internal/domain"
)

type ProductRepository interface {
	Create(product *domain.Product) error
	List(req PageRequest) ([]domain.Product, error)
	// FindByProperties matches products whose JSON properties carry the
	// given color and contain size in their size array.
	FindByProperties(color, size string) ([]domain.Product, error)
}

type GormProductRepository struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) List(req PageRequest) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Order("created_at desc").
		Offset(req.offset()).
		Limit(req.limit()).
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) FindByProperties(color, size string) ([]domain.Product, error) {
	q := r.db.Model(&domain.Product{}).
		Select("id", "name", "properties").
		Where(datatypes.JSONQuery("properties").Equals(color, "color"))

	// Array containment has no dialect-neutral expression: Postgres gets
	// the native @> operator, SQLite (tests) walks the array via json_each.
	switch r.db.Dialector.Name() {
	case "postgres":
		contains, err := json.Marshal(map[string]any{"size": []string{size}})
		if err != nil {
			return nil, err
		}
		q = q.Where("properties @> ?", string(contains))
	default:
		q = q.Where("EXISTS (SELECT 1 FROM json_each(properties, '$.size') WHERE json_each.value = ?)", size)
	}

	var products []domain.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

package services

import (
	"storefront/internal/models"

	"gorm.io/gorm"
)

type ProductService struct{}

func NewProductService() *ProductService {
	return &ProductService{}
}

// List returns all products newest-first.
func (s *ProductService) List() ([]models.Product, error) {
	products := make([]models.Product, 0)
	if err := models.DB.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create inserts a product. Fields are expected to be validated already via
// ValidateProductFields; imagePath is the stored upload reference.
func (s *ProductService) Create(name string, price int, description, imagePath string) (*models.Product, error) {
	product := &models.Product{
		Name:        name,
		Price:       price,
		Description: description,
		Image:       imagePath,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(product).Error
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// Update rewrites a product row. An empty imagePath leaves the stored image
// reference untouched. Updating an id that does not exist is a no-op.
func (s *ProductService) Update(id uint, name string, price int, description, imagePath string) error {
	values := map[string]interface{}{
		"name":        name,
		"price":       price,
		"description": description,
	}
	if imagePath != "" {
		values["image"] = imagePath
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Product{}).Where("id = ?", id).Updates(values).Error
	})
}

// Delete removes a product by id. Deleting a nonexistent id is a silent
// no-op; callers treat it as success.
func (s *ProductService) Delete(id uint) error {
	return models.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&models.Product{}, id).Error
	})
}

package repositories

import "github.com/kavidoi/murallayes-production/pkg/domain/entities"

// ProductRepository provides access to product and recipe data.
type ProductRepository interface {
	GetProduct(id entities.ProductID) (*entities.Product, error)
	GetAllProducts() ([]*entities.Product, error)
	LoadProducts(products []*entities.Product) error
}

package memory

import (
	"github.com/kavidoi/murallayes-production/pkg/domain/entities"
	"github.com/kavidoi/murallayes-production/pkg/domain/repositories"
)

// ProductRepository provides in-memory product and recipe storage.
type ProductRepository struct {
	products []entities.Product
	index    map[entities.ProductID]int
}

// NewProductRepository creates a new in-memory product repository.
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		products: make([]entities.Product, 0, expectedProducts),
		index:    make(map[entities.ProductID]int, expectedProducts),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads products into the repository.
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		r.AddProduct(*product)
	}
	return nil
}

// AddProduct adds or replaces a product.
func (r *ProductRepository) AddProduct(product entities.Product) {
	if i, exists := r.index[product.ID]; exists {
		r.products[i] = product
		return
	}
	r.index[product.ID] = len(r.products)
	r.products = append(r.products, product)
}

// GetProduct returns one product with its recipe.
func (r *ProductRepository) GetProduct(id entities.ProductID) (*entities.Product, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, &entities.NotFoundError{Kind: "product", ID: string(id)}
	}
	product := r.products[i]
	return &product, nil
}

// GetAllProducts returns all products.
func (r *ProductRepository) GetAllProducts() ([]*entities.Product, error) {
	products := make([]*entities.Product, 0, len(r.products))
	for i := range r.products {
		product := r.products[i]
		products = append(products, &product)
	}
	return products, nil
}

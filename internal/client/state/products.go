package state

import (
	"context"
	"slices"
	"sync"

	"github.com/tuguldur-s/travelfeed/internal/client/api"
	"github.com/tuguldur-s/travelfeed/internal/client/models"
)

type productsSlice struct {
	mu sync.Mutex
	status
	products []models.Product
}

// ProductsState is a point-in-time snapshot of the products slice.
type ProductsState struct {
	Products []models.Product
	Loading  bool
	Err      string
}

func (s *Store) ProductsState() ProductsState {
	s.products.mu.Lock()
	defer s.products.mu.Unlock()
	return ProductsState{Products: slices.Clone(s.products.products), Loading: s.products.Loading, Err: s.products.Err}
}

// FetchProducts replaces the product list with the server's.
func (s *Store) FetchProducts(ctx context.Context) error {
	s.products.mu.Lock()
	s.products.begin()
	s.products.mu.Unlock()

	products, err := s.api.FetchProducts(ctx)
	if err != nil {
		s.products.mu.Lock()
		s.products.fail(err)
		s.products.mu.Unlock()
		return err
	}

	s.products.mu.Lock()
	s.products.products = products
	s.products.done()
	s.products.mu.Unlock()
	return nil
}

// CreateProduct appends the returned listing and converges to the
// authoritative list in the background.
func (s *Store) CreateProduct(ctx context.Context, draft api.ProductDraft) (*models.Product, error) {
	s.products.mu.Lock()
	s.products.begin()
	s.products.mu.Unlock()

	product, err := s.api.CreateProduct(ctx, draft)
	if err != nil {
		s.products.mu.Lock()
		s.products.fail(err)
		s.products.mu.Unlock()
		return nil, err
	}

	s.products.mu.Lock()
	s.products.products = append(s.products.products, *product)
	s.products.done()
	s.products.mu.Unlock()

	s.refetchProductsAsync()
	return product, nil
}

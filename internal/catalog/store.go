// internal/catalog/store.go
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rasmstore/backend/internal/models"
	"github.com/rasmstore/backend/internal/utils"
)

// Store is the immutable in-memory catalog. It is built once at process
// start from literal records and never written afterwards, so concurrent
// reads from request handlers need no locking. A corrupt catalog must
// never be served partially: NewStore reports every invalid record and
// the caller is expected to refuse to start.
type Store struct {
	products []models.Product
	index    map[string]int
}

// NewStore validates every record and builds the lookup index. The
// returned error names each violated field of each bad record, plus any
// duplicate ids, so a broken catalog is fixable in one pass.
func NewStore(products []models.Product) (*Store, error) {
	if len(products) == 0 {
		return nil, errors.New("catalog must contain at least one product")
	}

	index := make(map[string]int, len(products))
	var problems []string

	for i, p := range products {
		label := p.ID
		if label == "" {
			label = fmt.Sprintf("record %d", i)
		}

		if err := utils.ValidateStruct(&p); err != nil {
			for _, fe := range utils.GetValidationErrors(err) {
				problems = append(problems, fmt.Sprintf("%s: %s", label, fe.Message))
			}
		}

		if p.ID != "" {
			if _, dup := index[p.ID]; dup {
				problems = append(problems, fmt.Sprintf("%s: duplicate product id", label))
				continue
			}
			index[p.ID] = i
		}
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid catalog: %s", strings.Join(problems, "; "))
	}

	owned := make([]models.Product, len(products))
	copy(owned, products)

	return &Store{products: owned, index: index}, nil
}

// All returns the catalog in insertion order. The slice is a copy;
// callers cannot reorder or replace the canonical records through it.
func (s *Store) All() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID looks up a single product by its stable id.
func (s *Store) ByID(id string) (models.Product, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Product{}, false
	}
	return s.products[i], true
}

// Len reports the number of catalog entries.
func (s *Store) Len() int {
	return len(s.products)
}

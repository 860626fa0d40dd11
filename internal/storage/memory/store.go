package memory

import (
	"sync"
	"time"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// Store is an in-process repository facade. One RWMutex guards all
// entity maps, so every multi-entity mutation (notably checkout) is a
// single critical section and readers always observe committed state.
type Store struct {
	mu sync.RWMutex

	users     map[int64]*model.User
	products  map[int64]*model.Product
	cartItems map[int64]*model.CartItem
	orders    map[int64]*model.Order

	userIDs    idAllocator
	productIDs idAllocator
	cartIDs    idAllocator
	orderIDs   idAllocator

	clock func() time.Time
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:     make(map[int64]*model.User),
		products:  make(map[int64]*model.Product),
		cartItems: make(map[int64]*model.CartItem),
		orders:    make(map[int64]*model.Order),
		clock:     time.Now,
	}
}

// SetClock overrides the time source, for tests.
func (s *Store) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

func (s *Store) now() time.Time {
	return s.clock()
}

func cloneProduct(p *model.Product) model.Product {
	out := *p
	if p.Price != nil {
		price := *p.Price
		out.Price = &price
	}
	return out
}

func cloneOrder(o *model.Order) model.Order {
	out := *o
	out.Items = make([]model.OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}

package cart

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/velora-shop/storefront-backend/pkg/db/models"
	"github.com/velora-shop/storefront-backend/pkg/logger"
)

// Slot is the durable key-value cell backing one session's cart. Load reports
// found=false when nothing has been written yet.
type Slot interface {
	Save(ctx context.Context, payload []byte) error
	Load(ctx context.Context) (payload []byte, found bool, err error)
	Clear(ctx context.Context) error
}

// Store owns the ordered line-item collection for one session. All mutations
// are serialized under a single mutex so the one-item-per-key invariant holds
// even with concurrent request handlers. Mutations never fail: a broken slot
// costs durability, not the in-memory cart, and is logged rather than
// surfaced.
type Store struct {
	mu    sync.Mutex
	items []Item
	slot  Slot
	logg  *logger.Logger
}

// NewStore builds a Store hydrated from the slot's persisted state. A load
// error or corrupt payload starts the session with an empty cart.
func NewStore(ctx context.Context, slot Slot, logg *logger.Logger) *Store {
	s := &Store{slot: slot, logg: logg}
	s.hydrate(ctx)
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	if s.slot == nil {
		return
	}
	payload, found, err := s.slot.Load(ctx)
	if err != nil {
		s.warn(ctx, err, "failed to load persisted cart, starting empty")
		return
	}
	if !found {
		return
	}
	var items []Item
	if err := json.Unmarshal(payload, &items); err != nil {
		s.warn(ctx, err, "persisted cart is corrupt, starting empty")
		return
	}
	s.items = items
}

// AddItem appends a quantity-1 line for the product/variant pair, or bumps
// the existing line's quantity by 1 without reordering.
func (s *Store) AddItem(ctx context.Context, product models.Product, variant models.Variant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := Key{ProductID: product.ID, VariantID: variant.ID}
	if i := s.index(key); i >= 0 {
		s.items[i].Quantity++
	} else {
		s.items = append(s.items, NewItem(product, variant))
	}
	s.persist(ctx)
}

// RemoveItem deletes the matching line entirely. Unknown keys are a no-op.
func (s *Store) RemoveItem(ctx context.Context, productID, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(Key{ProductID: productID, VariantID: variantID})
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persist(ctx)
}

// IncreaseItem bumps the matching line's quantity by 1. Unknown keys are a
// no-op.
func (s *Store) IncreaseItem(ctx context.Context, productID, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(Key{ProductID: productID, VariantID: variantID})
	if i < 0 {
		return
	}
	s.items[i].Quantity++
	s.persist(ctx)
}

// DecreaseItem lowers the matching line's quantity by 1, removing the line
// when it would drop below 1. Unknown keys are a no-op.
func (s *Store) DecreaseItem(ctx context.Context, productID, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(Key{ProductID: productID, VariantID: variantID})
	if i < 0 {
		return
	}
	if s.items[i].Quantity <= 1 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	} else {
		s.items[i].Quantity--
	}
	s.persist(ctx)
}

// RemoveAll clears the collection and the persisted slot.
func (s *Store) RemoveAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if s.slot == nil {
		return
	}
	if err := s.slot.Clear(ctx); err != nil {
		s.warn(ctx, err, "failed to clear persisted cart")
	}
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total sums price times quantity across all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

// index returns the position of the line matching key, or -1. Callers hold
// the mutex.
func (s *Store) index(key Key) int {
	for i, item := range s.items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

// persist writes the current lines to the slot. Callers hold the mutex.
func (s *Store) persist(ctx context.Context) {
	if s.slot == nil {
		return
	}
	payload, err := json.Marshal(s.items)
	if err != nil {
		s.warn(ctx, err, "failed to serialize cart")
		return
	}
	if err := s.slot.Save(ctx, payload); err != nil {
		s.warn(ctx, err, "failed to persist cart")
	}
}

func (s *Store) warn(ctx context.Context, err error, msg string) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), msg)
}

package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"product-inventory/internal/models"
)

// MemoryStore implementa Store en memoria, con las mismas reglas que la
// colección de Mongo. Pensado para tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[primitive.ObjectID]memoryItem
	seq   int64
	now   func() time.Time
}

type memoryItem struct {
	product models.Product
	seq     int64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[primitive.ObjectID]memoryItem),
		now:   time.Now,
	}
}

// WithClock reemplaza el reloj usado para los timestamps
func (m *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	m.now = now
	return m
}

func (m *MemoryStore) timestamp() time.Time {
	return m.now().UTC().Truncate(time.Millisecond)
}

func (m *MemoryStore) Find(ctx context.Context) ([]models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	items := make([]memoryItem, 0, len(m.items))
	for _, it := range m.items {
		items = append(items, it)
	}
	m.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i].product.CreatedAt, items[j].product.CreatedAt
		if !a.Equal(b) {
			return a.After(b)
		}
		return items[i].seq > items[j].seq
	})

	products := make([]models.Product, len(items))
	for i, it := range items {
		products[i] = it.product
	}
	return products, nil
}

func (m *MemoryStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	it, ok := m.items[objID]
	if !ok {
		return nil, ErrNotFound
	}
	p := it.product
	return &p, nil
}

func (m *MemoryStore) Create(ctx context.Context, product *models.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkProduct(product); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.timestamp()
	product.ID = primitive.NewObjectID()
	product.CreatedAt = now
	product.UpdatedAt = now

	m.seq++
	m.items[product.ID] = memoryItem{product: *product, seq: m.seq}
	return nil
}

func (m *MemoryStore) FindByIDAndUpdate(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := checkUpdate(update); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.items[objID]
	if !ok {
		return nil, ErrNotFound
	}
	prior := it.product

	update.Apply(&it.product)
	now := m.timestamp()
	if !now.After(prior.UpdatedAt) {
		now = prior.UpdatedAt.Add(time.Millisecond)
	}
	it.product.UpdatedAt = now
	m.items[objID] = it

	return &prior, nil
}

func (m *MemoryStore) FindByIDAndDelete(ctx context.Context, id string) (*models.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	it, ok := m.items[objID]
	if !ok {
		return nil, ErrNotFound
	}
	delete(m.items, objID)
	return &it.product, nil
}

// Len devuelve la cantidad de productos guardados
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

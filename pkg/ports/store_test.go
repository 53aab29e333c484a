package ports_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/folio/pkg/domain"
	"github.com/aretw0/folio/pkg/ports"
	"github.com/stretchr/testify/assert"
)

// MockStore is a map-backed BlobStore used to check the contract suite itself.
type MockStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMockStore() *MockStore {
	return &MockStore{data: make(map[string][]byte)}
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ports.ErrBlobNotFound
	}
	return append([]byte(nil), v...), nil
}

func (m *MockStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func TestBlobStore_Contract(t *testing.T) {
	ports.RunBlobStoreContract(t, NewMockStore())
}

func TestNotifierFunc(t *testing.T) {
	var got []domain.Notification
	n := ports.NotifierFunc(func(_ context.Context, n domain.Notification) {
		got = append(got, n)
	})

	n.Notify(context.Background(), domain.Notification{Level: domain.NotifyWarn, Message: "Document deleted."})
	assert.Equal(t, []domain.Notification{{Level: domain.NotifyWarn, Message: "Document deleted."}}, got)
}

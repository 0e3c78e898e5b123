package ratings

import (
	"context"
	"errors"
	"sync"
)

// RecordKey names the persisted rating collection in every backend
const RecordKey = "campanini_ratings"

// ErrNoData is returned by a Backend when nothing has been persisted yet
var ErrNoData = errors.New("no persisted ratings")

// Backend reads and overwrites the encoded rating collection as a whole
type Backend interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Close() error
}

// MemoryBackend keeps the encoded collection in process memory
type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// NewMemoryBackendWith creates an in-memory backend pre-filled with data
func NewMemoryBackendWith(data []byte) *MemoryBackend {
	b := &MemoryBackend{}
	b.data = append([]byte(nil), data...)
	b.set = true
	return b
}

func (b *MemoryBackend) Read(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.set {
		return nil, ErrNoData
	}
	return append([]byte(nil), b.data...), nil
}

func (b *MemoryBackend) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.data = append(b.data[:0], data...)
	b.set = true
	return nil
}

func (b *MemoryBackend) Close() error { return nil }

package ratings

import (
	"context"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

// LevelDBBackend keeps the collection under RecordKey in an embedded LevelDB
type LevelDBBackend struct {
	db *leveldb.DB
}

// OpenLevelDB opens or creates the database at path
func OpenLevelDB(path string) (*LevelDBBackend, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb %s: %w", path, err)
	}
	return &LevelDBBackend{db: db}, nil
}

// OpenLevelDBInMemory opens a LevelDB over memory storage
func OpenLevelDBInMemory() (*LevelDBBackend, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open in-memory leveldb: %w", err)
	}
	return &LevelDBBackend{db: db}, nil
}

func (b *LevelDBBackend) Read(ctx context.Context) ([]byte, error) {
	data, err := b.db.Get([]byte(RecordKey), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", RecordKey, err)
	}
	return data, nil
}

func (b *LevelDBBackend) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := b.db.Put([]byte(RecordKey), data, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("put %s: %w", RecordKey, err)
	}
	return nil
}

func (b *LevelDBBackend) Close() error {
	return b.db.Close()
}

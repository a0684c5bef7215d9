package curve

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// NewCachedStorage keeps loaded datasets in memory for ttl. Saves write through.
// Loaded rows are shared between callers and must not be modified.
func NewCachedStorage(storage Storage, ttl time.Duration) Storage {
	if ttl <= 0 {
		ttl = time.Minute
	}

	return &cachedStorage{
		storage: storage,
		cached:  cache.New(ttl, 2*ttl),
	}
}

type cachedStorage struct {
	storage Storage
	cached  *cache.Cache
}

func (impl *cachedStorage) Load(key string) ([]Row, error) {
	if i, ok := impl.cached.Get(key); ok {
		if rows, ok := i.([]Row); ok {
			return rows, nil
		}
	}

	rows, err := impl.storage.Load(key)
	if err != nil {
		return nil, err
	}

	impl.cached.SetDefault(key, rows)

	return rows, nil
}

func (impl *cachedStorage) Save(key string, rows []Row) error {
	if err := impl.storage.Save(key, rows); err != nil {
		impl.cached.Delete(key)

		return err
	}

	impl.cached.SetDefault(key, rows)

	return nil
}

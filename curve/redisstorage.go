package curve

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"gopkg.in/yaml.v3"
)

// NewRedisStorage keeps each dataset as one YAML string value under preKey:dataset:key.
func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) *RedisStorage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "RedisStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &RedisStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type RedisStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *RedisStorage) datasetKey(key string) string {
	return impl.preKey + ":dataset:" + key
}

func (impl *RedisStorage) Load(key string) (rows []Row, err error) {
	d, err := impl.redisCli.Get(context.Background(), impl.datasetKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = fmt.Errorf("%w: dataset %s", commerr.ErrNotFound, key)
		}

		return
	}

	rows, err = ParseRows(d)
	if err != nil {
		impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("parse dataset failed")
	}

	return
}

func (impl *RedisStorage) Save(key string, rows []Row) (err error) {
	d, err := yaml.Marshal(rows)
	if err != nil {
		return
	}

	err = impl.redisCli.Set(context.Background(), impl.datasetKey(key), d, 0).Err()

	return
}

func (impl *RedisStorage) Remove(key string) error {
	return impl.redisCli.Del(context.Background(), impl.datasetKey(key)).Err()
}

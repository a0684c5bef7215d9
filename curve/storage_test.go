package curve

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libconfig/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage(t *testing.T) {
	root := filepath.Join(t.TempDir(), "datasets")

	var s Storage = NewFileStorage(root, nil)

	rows := []Row{
		{{Key: "Date", Value: "2024-01-01"}, {Key: "B", Value: 1.5}, {Key: "A", Value: 2}},
		{{Key: "Date", Value: "2024-01-02"}, {Key: "B", Value: 3}, {Key: "A", Value: 4}},
	}

	require.Nil(t, s.Save("breakdown.yaml", rows))

	loaded, err := s.Load("breakdown.yaml")
	require.Nil(t, err)

	ps, err := Normalize(MultiValueMode{}, loaded)
	require.Nil(t, err)
	assert.Equal(t, []DataPoint{
		{At: day(1), Name: "B", Value: 1.5},
		{At: day(1), Name: "A", Value: 2},
		{At: day(2), Name: "B", Value: 3},
		{At: day(2), Name: "A", Value: 4},
	}, ps)

	_, err = s.Load("missing.yaml")
	assert.NotNil(t, err)
}

type countingStorage struct {
	loads int
	saved map[string][]Row
}

func (s *countingStorage) Load(key string) ([]Row, error) {
	s.loads++

	rows, ok := s.saved[key]
	if !ok {
		return nil, commerr.ErrNotFound
	}

	return rows, nil
}

func (s *countingStorage) Save(key string, rows []Row) error {
	s.saved[key] = rows

	return nil
}

func TestCachedStorage(t *testing.T) {
	backend := &countingStorage{saved: map[string][]Row{
		"values": {{{Key: "Date", Value: "2024-01-01"}, {Key: "Value", Value: 100}}},
	}}

	s := NewCachedStorage(backend, time.Minute)

	for i := 0; i < 3; i++ {
		rows, err := s.Load("values")
		require.Nil(t, err)
		assert.Len(t, rows, 1)
	}

	assert.Equal(t, 1, backend.loads)

	_, err := s.Load("missing")
	assert.ErrorIs(t, err, commerr.ErrNotFound)
	assert.Equal(t, 2, backend.loads)

	require.Nil(t, s.Save("returns", []Row{{{Key: "Date", Value: "2024-01-01"}, {Key: "Value", Value: 1}}}))

	rows, err := s.Load("returns")
	require.Nil(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 2, backend.loads)
}

func initRedis(t *testing.T) *redis.Client {
	cfg := ut.SetupUTConfig4Redis(t)

	options, err := redis.ParseURL(cfg.RedisDSN)
	require.Nil(t, err)

	cli := redis.NewClient(options)

	ctx, cf := context.WithTimeout(context.Background(), 3*time.Second)
	defer cf()

	require.Nil(t, cli.Ping(ctx).Err())

	return cli
}

func TestRedisStorage(t *testing.T) {
	s := NewRedisStorage("ut", initRedis(t), l.NewConsoleLoggerWrapper())

	_ = s.Remove("values")

	_, err := s.Load("values")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	rows := []Row{
		{{Key: "Date", Value: "2024-01-01"}, {Key: "Value", Value: 100}},
		{{Key: "Date", Value: "2024-01-02"}, {Key: "Value", Value: 105.5}},
	}

	require.Nil(t, s.Save("values", rows))

	loaded, err := s.Load("values")
	require.Nil(t, err)
	assert.Equal(t, rows, loaded)

	assert.Nil(t, s.Remove("values"))
}

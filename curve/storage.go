package curve

import (
	"path"

	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"gopkg.in/yaml.v3"
)

// NewFileStorage keeps one dataset per key as a YAML document under root. JSON
// documents written by other tools load as well.
func NewFileStorage(root string, storage stg.FileStorage) *FileStorage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &FileStorage{
		root:    root,
		storage: storage,
	}
}

type FileStorage struct {
	root    string
	storage stg.FileStorage
}

func (fs *FileStorage) fileNameByKey(key string) string {
	return path.Join(fs.root, key)
}

func (fs *FileStorage) Load(key string) (rows []Row, err error) {
	d, err := fs.storage.ReadFile(fs.fileNameByKey(key))
	if err != nil {
		return
	}

	rows, err = ParseRows(d)

	return
}

func (fs *FileStorage) Save(key string, rows []Row) (err error) {
	if fs.root != "" {
		_ = pathutils.MustDirExists(fs.root)
	}

	d, err := yaml.Marshal(rows)
	if err != nil {
		return
	}

	err = fs.storage.WriteFile(fs.fileNameByKey(key), d)

	return
}

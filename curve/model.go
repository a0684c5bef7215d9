package curve

import "time"

type DataPoint struct {
	At    time.Time `yaml:"at" json:"at"`
	Name  string    `yaml:"name" json:"name"`
	Value float64   `yaml:"value" json:"value"`
}

// Series is the ordered points sharing one name. The order is the input order,
// callers supply chronologically ordered rows.
type Series struct {
	Name   string
	Points []DataPoint
}

func (s *Series) Len() int {
	return len(s.Points)
}

type Storage interface {
	Load(key string) (rows []Row, err error)
	Save(key string, rows []Row) error
}

package curve

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

type Field struct {
	Key   string
	Value any
}

// Row is one input record. Fields keep the order they were supplied in, which is
// the column order of multi-value mode.
type Row []Field

func (r Row) Get(key string) (v any, ok bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}

	return
}

func RowFromMap(m map[string]any) Row {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	r := make(Row, 0, len(keys))
	for _, k := range keys {
		r = append(r, Field{Key: k, Value: m[k]})
	}

	return r
}

func (r Row) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{
		Kind: yaml.MappingNode,
	}

	for _, f := range r {
		var v yaml.Node

		if err := v.Encode(f.Value); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: f.Key,
		}, &v)
	}

	return node, nil
}

func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected an object", ErrMalformedRecord, node.Line)
	}

	row := make(Row, 0, len(node.Content)/2)

	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		var v any

		if err := node.Content[idx+1].Decode(&v); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, node.Content[idx+1].Line, err)
		}

		row = append(row, Field{Key: node.Content[idx].Value, Value: v})
	}

	*r = row

	return nil
}

// ParseRows decodes a serialized sequence of records. JSON input is accepted as
// it is a subset of YAML.
func ParseRows(d []byte) (rows []Row, err error) {
	var node yaml.Node

	err = yaml.Unmarshal(d, &node)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrMalformedRecord, err)

		return
	}

	if node.Kind == 0 {
		return
	}

	seq := &node
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}

	if seq.Kind != yaml.SequenceNode {
		err = fmt.Errorf("%w: line %d: expected a sequence of objects", ErrMalformedRecord, seq.Line)

		return
	}

	err = seq.Decode(&rows)

	return
}

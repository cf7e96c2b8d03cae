package vec

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// MarshalJSON encodes the live elements as a JSON array. An empty vector
// encodes as [], not null.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.size == 0 {
		return []byte("[]"), nil
	}
	b, err := json.Marshal(v.Slice())
	if err != nil {
		return nil, errors.Wrap(err, "vec: marshal elements")
	}
	return b, nil
}

// UnmarshalJSON replaces the vector's contents with the decoded array.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return errors.Wrap(err, "vec: unmarshal elements")
	}
	repl := Of(elems...)
	v.Swap(repl)
	return nil
}

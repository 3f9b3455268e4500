package render

import (
	"encoding/json"
	"fmt"
)

// EncodeScalar renders a task-parameter value in its canonical scalar form:
// booleans and numbers bare, strings quoted. The encoding is JSON, so
// encoded values re-parse to the same value.
func EncodeScalar(v interface{}) (string, error) {
	switch v.(type) {
	case string, bool, int, int64, uint64, float64, nil:
	default:
		return "", fmt.Errorf("task parameter value %v (%T) is not a scalar", v, v)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding task parameter value: %w", err)
	}
	return string(data), nil
}

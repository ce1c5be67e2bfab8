// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"aligner/pkg/api"
)

// WriteJSON emits one api.ResultV1 per line (JSONL).
func WriteJSON(w io.Writer, v api.ResultV1) error {
	enc := json.NewEncoder(w)
	return enc.Encode(v)
}

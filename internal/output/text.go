// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// WriteText prints one tab-separated line per query:
// id, score (or "no result"), end locations, optional start locations.
func WriteText(w io.Writer, r Row) error {
	if !r.Found {
		_, err := fmt.Fprintf(w, "%s\tno result\n", r.QueryID)
		return err
	}
	if len(r.Starts) > 0 {
		_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.QueryID, r.Score, intsCSV(r.Ends), intsCSV(r.Starts))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\t%d\t%s\n", r.QueryID, r.Score, intsCSV(r.Ends))
	return err
}

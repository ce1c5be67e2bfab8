// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"aligner-core/alphabet"
)

// Record is one FASTA record with its sequence already encoded as dense
// alphabet indices.
type Record struct {
	ID  string
	Seq []uint8
}

// Residues sums sequence lengths over records.
func Residues(recs []Record) int {
	n := 0
	for _, r := range recs {
		n += len(r.Seq)
	}
	return n
}

// ReadAll parses every record from path, extending tbl with each symbol the
// first time it appears. The table is shared in-out: call it for the query
// file and the target file with the same table so indices agree.
func ReadAll(path string, tbl *alphabet.Table) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	recs, err := readAll(rc, tbl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

func readAll(r io.Reader, tbl *alphabet.Table) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		recs []Record
		id   string
		seq  = make([]uint8, 0, 1<<16)
		open bool
	)

	flush := func() {
		if !open {
			return
		}
		recs = append(recs, Record{ID: id, Seq: append([]uint8(nil), seq...)})
		seq = seq[:0]
		open = false
	}

	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			id = parseHeaderID(line[1:])
			open = true
			continue
		}
		if !open {
			// headerless leading sequence still forms a record
			open = true
		}
		for _, c := range line {
			seq = append(seq, tbl.Encode(c))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	flush()
	return recs, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

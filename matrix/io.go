// SPDX-License-Identifier: MIT

package matrix

import (
	"bufio"
	"fmt"
	"io"
)

// Scan fills the pre-sized matrix from r, reading exactly Rows()*Cols()
// whitespace-separated values in row-major order. The stream does not encode
// the shape; callers establish it beforehand (e.g. by reading n first).
//
// Notes:
//   - Pass a bufio.Reader (or any io.RuneScanner) when more data follows in the
//     same stream; otherwise fmt may consume one rune past the last value.
//   - On error the matrix may be partially filled.
//
// Errors:
//   - ErrNilMatrix; any scan error (io.ErrUnexpectedEOF for short input),
//     wrapped with the offending coordinates.
func (m *Dense[T]) Scan(r io.Reader) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("Scan: %w", err)
	}
	for idx := range m.data {
		if _, err := fmt.Fscan(r, &m.data[idx]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("Scan(%d,%d): %w", idx/m.c, idx%m.c, err)
		}
	}

	return nil
}

// Dump writes the matrix as Rows() lines of Cols() space-separated values.
func (m *Dense[T]) Dump(w io.Writer) error {
	if err := ValidateNotNil(m); err != nil {
		return fmt.Errorf("Dump: %w", err)
	}
	bw := bufio.NewWriter(w)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprint(bw, m.data[i*m.c+j])
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

package instance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/DataDog/zstd"

	"github.com/katalvlaran/twoopt/matrix"
)

// Write emits m in the format accepted by Read: the header line, then one
// row per line. Values use the shortest representation that round-trips.
func Write(w io.Writer, m matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	n := m.Rows()
	if _, err := fmt.Fprintln(bw, n); err != nil {
		return err
	}

	var (
		i, j int
		v    float64
		err  error
		buf  []byte
	)
	for i = 0; i < n; i++ {
		buf = buf[:0]
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile creates path and writes m to it, zstd-compressing ".zst" files.
func WriteFile(path string, m matrix.Matrix) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("instance: create: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, zstdExt) {
		return Write(f, m)
	}

	zw := zstd.NewWriter(f)
	if err = Write(zw, m); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

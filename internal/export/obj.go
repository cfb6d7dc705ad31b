// Package export writes generated surface buffers to disk formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/surfaceplot/internal/engine/surface"
)

// WriteOBJ writes the surface as a Wavefront OBJ mesh. Vertex lines use
// the conventional (x, y, z) order, so the vertical coordinate stored in
// the second position slot is emitted as y directly.
func WriteOBJ(w io.Writer, b *surface.Buffers) error {
	if b == nil || len(b.Positions) == 0 {
		return fmt.Errorf("no surface data to export")
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# surfaceplot export")

	vertexCount := len(b.Positions) / 4
	for i := 0; i < vertexCount; i++ {
		x := b.Positions[i*4]
		y := b.Positions[i*4+1]
		z := b.Positions[i*4+2]
		fmt.Fprintf(bw, "v %g %g %g\n", x, y, z)
	}

	// OBJ indices are 1-based.
	for i := 0; i+2 < len(b.Indices); i += 3 {
		fmt.Fprintf(bw, "f %d %d %d\n", b.Indices[i]+1, b.Indices[i+1]+1, b.Indices[i+2]+1)
	}

	return bw.Flush()
}

// SaveOBJ writes the surface to the given path.
func SaveOBJ(path string, b *surface.Buffers) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteOBJ(f, b); err != nil {
		return fmt.Errorf("writing OBJ to %s: %w", path, err)
	}
	return nil
}

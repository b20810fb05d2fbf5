package bitcode_test

// Exercises the testable property spec.md's §4.5 rationale and §8 describe
// informally: columnar output compresses at least as well as row-major
// output of the same data, because same-typed field bits end up adjacent
// in the byte stream. This is a correctness-adjacent property test (it
// belongs to the interop compressibility-verification harness SPEC_FULL.md
// §3 describes), not a member of the benchmark suite Non-goals exclude.

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlobytes/bitcode"
	"github.com/arlobytes/bitcode/bitbuf"
	"github.com/arlobytes/bitcode/column"
	"github.com/arlobytes/bitcode/interop"
)

type labeledSample struct {
	Label string
	Value int32
}

// rowMajor interleaves each sample's fields in row order, the naive layout
// spec.md §4.5 contrasts bitcode's columnar transpose against.
func rowMajor(samples []labeledSample) []byte {
	var out []byte
	for _, s := range samples {
		out = append(out, []byte(s.Label)...)
		out = append(out, 0) // field separator, so label boundaries survive

		var v [4]byte
		binary.LittleEndian.PutUint32(v[:], uint32(s.Value))
		out = append(out, v[:]...)
	}

	return out
}

func columnar(samples []labeledSample) []byte {
	return bitcode.Encode(samples, func() column.Writer[labeledSample] {
		return newLabeledSampleWriter()
	})
}

type labeledSampleWriter struct {
	labels *column.TextStringWriter
	values *column.Int32Writer
}

func newLabeledSampleWriter() *labeledSampleWriter {
	return &labeledSampleWriter{
		labels: column.NewTextStringWriter(),
		values: column.NewInt32Writer(),
	}
}

var _ column.Writer[labeledSample] = (*labeledSampleWriter)(nil)

func (w *labeledSampleWriter) Reserve(n int) { w.labels.Reserve(n); w.values.Reserve(n) }
func (w *labeledSampleWriter) Len() int      { return w.labels.Len() }
func (w *labeledSampleWriter) Push(s labeledSample) {
	w.labels.Push(s.Label)
	w.values.Push(s.Value)
}

func (w *labeledSampleWriter) Finish(bw *bitbuf.Writer) {
	w.labels.Finish(bw)
	w.values.Finish(bw)
}

func TestProperty_ColumnarCompressesAtLeastAsWellAsRowMajor(t *testing.T) {
	samples := make([]labeledSample, 0, 500)
	labels := []string{"cpu.user", "cpu.system", "cpu.idle", "mem.used", "mem.free"}
	for i := 0; i < 500; i++ {
		samples = append(samples, labeledSample{
			Label: labels[i%len(labels)],
			Value: int32(100 + i%7), // narrow, repetitive range: the case columnar packing favors
		})
	}

	row := rowMajor(samples)
	col := columnar(samples)

	for _, name := range []string{"zstd", "s2", "lz4"} {
		var c interop.Codec
		switch name {
		case "zstd":
			c = interop.NewZstd()
		case "s2":
			c = interop.NewS2()
		case "lz4":
			c = interop.NewLZ4()
		}

		t.Run(name, func(t *testing.T) {
			rowCompressed, err := c.Compress(row)
			require.NoError(t, err)

			colCompressed, err := c.Compress(col)
			require.NoError(t, err)

			assert.LessOrEqual(t, len(colCompressed), len(rowCompressed),
				"columnar encoding should compress at least as well as row-major encoding of the same samples")
		})
	}
}

package hufftree

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/hufftree/bitstream"
)

// Verbosity controls how much diagnostic output a Processor emits.  It never
// changes what a Processor computes.
type Verbosity int

const (
	// Quiet emits nothing.
	Quiet Verbosity = 0

	// DebugLow emits one summary line per operation.
	DebugLow Verbosity = 1

	// DebugHigh additionally emits the frequency table, the code table,
	// the header leaves, and every code written or read.
	DebugHigh Verbosity = 4
)

// Logger receives diagnostic output.  *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Stats summarizes a completed Compress or Decompress call.
type Stats struct {
	// BitsRead is the number of bits consumed from the input.  For
	// compression, only the encoding pass is counted.
	BitsRead int64

	// BitsWritten is the number of bits written to the output, before
	// padding to a byte boundary.
	BitsWritten int64

	// Leaves is the number of leaves in the Huffman tree.
	Leaves int
}

// Processor compresses and decompresses streams in the tree-header format.
// The zero value is ready to use and emits no diagnostics.  A Processor has
// no mutable state and may be used by several goroutines at once, provided
// that each call has its own streams.
type Processor struct {
	Verbosity Verbosity
	Logger    Logger
}

// Compress compresses all of in and writes the result to out, which is
// closed on success.  in must be rewindable (see bitstream.Reader.Reset).
//
// On failure out is left open and its contents must be discarded.
//
func (p Processor) Compress(in *bitstream.Reader, out *bitstream.Writer) error {
	_, err := p.CompressStats(in, out)
	return err
}

// CompressStats is like Compress, but also reports Stats.
func (p Processor) CompressStats(in *bitstream.Reader, out *bitstream.Writer) (Stats, error) {
	freqs, err := CountFrequencies(in)
	if err != nil {
		return Stats{}, err
	}
	if p.enabled(DebugHigh) {
		p.dump(&freqs)
	}

	root := BuildTree(&freqs)
	codes, err := BuildCodeTable(root)
	if err != nil {
		return Stats{}, err
	}
	if p.enabled(DebugHigh) {
		p.dump(codes)
	}

	if err := out.WriteBits(BitsPerInt, MagicTreeHeader); err != nil {
		return Stats{}, err
	}
	if err := WriteHeader(out, root); err != nil {
		return Stats{}, err
	}
	if p.enabled(DebugHigh) {
		p.dump(root)
	}

	if err := in.Reset(); err != nil {
		return Stats{}, err
	}

	var trace func(Symbol, Code)
	if p.enabled(DebugHigh) {
		trace = func(symbol Symbol, hc Code) {
			p.Logger.Printf("wrote %d bits for %d: %s", hc.Size, symbol, hc)
		}
	}
	if err := encodePayload(codes, in, out, trace); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		BitsRead:    in.BitsRead(),
		BitsWritten: out.BitsWritten(),
		Leaves:      codes.NumSymbols(),
	}
	if err := out.Close(); err != nil {
		return Stats{}, err
	}
	if p.enabled(DebugLow) {
		p.Logger.Printf("compress: read %d bits, wrote %d bits, %d leaves", stats.BitsRead, stats.BitsWritten, stats.Leaves)
	}
	return stats, nil
}

// Decompress decodes a stream written by Compress from in, and writes the
// original bytes to out, which is closed on success.
//
// Returns a CorruptHeaderError if the magic tag or tree header is bad, or a
// TruncatedStreamError if the payload ends early.  On failure out is left
// open and its contents must be discarded.  If the magic tag is bad, nothing
// is written to out at all.
//
func (p Processor) Decompress(in *bitstream.Reader, out *bitstream.Writer) error {
	_, err := p.DecompressStats(in, out)
	return err
}

// DecompressStats is like Decompress, but also reports Stats.
func (p Processor) DecompressStats(in *bitstream.Reader, out *bitstream.Writer) (Stats, error) {
	tag, err := in.ReadBits(BitsPerInt)
	if err == io.EOF {
		return Stats{}, &CorruptHeaderError{Reason: "input ended while reading magic tag", Err: io.ErrUnexpectedEOF}
	}
	if err != nil {
		return Stats{}, &CorruptHeaderError{Reason: "failed to read magic tag", Err: err}
	}
	if tag != MagicTreeHeader {
		return Stats{}, &CorruptHeaderError{Reason: fmt.Sprintf("illegal header starts with %#08x", tag)}
	}

	root, err := ReadHeader(in)
	if err != nil {
		return Stats{}, err
	}
	if p.enabled(DebugHigh) {
		p.dump(root)
	}

	var trace func(Symbol)
	if p.enabled(DebugHigh) {
		trace = func(symbol Symbol) {
			p.Logger.Printf("read %d", symbol)
		}
	}
	if _, err := decodePayload(root, in, out, trace); err != nil {
		return Stats{}, err
	}

	stats := Stats{
		BitsRead:    in.BitsRead(),
		BitsWritten: out.BitsWritten(),
		Leaves:      root.NumLeaves(),
	}
	if err := out.Close(); err != nil {
		return Stats{}, err
	}
	if p.enabled(DebugLow) {
		p.Logger.Printf("decompress: read %d bits, wrote %d bits, %d leaves", stats.BitsRead, stats.BitsWritten, stats.Leaves)
	}
	return stats, nil
}

func (p Processor) enabled(level Verbosity) bool {
	return p.Logger != nil && p.Verbosity >= level
}

type dumper interface {
	Dump(w io.Writer) (int64, error)
}

func (p Processor) dump(d dumper) {
	var buf strings.Builder
	_, _ = d.Dump(&buf)
	p.Logger.Printf("%s", strings.TrimSuffix(buf.String(), "\n"))
}

// CompressBytes compresses data with a default Processor.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	in := bitstream.NewReader(bytes.NewReader(data))
	out := bitstream.NewWriter(&buf)
	if err := (Processor{}).Compress(in, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes decompresses data with a default Processor.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	in := bitstream.NewReader(bytes.NewReader(data))
	out := bitstream.NewWriter(&buf)
	if err := (Processor{}).Decompress(in, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Command hufftree compresses and decompresses files in the hufftree
// tree-header format.
//
// Usage:
//
//     hufftree [-d] [-v level] [-j jobs] [-o output] file...
//
// Without -d, each file is compressed to file.hf.  With -d, each file is
// decompressed to its name without the .hf suffix (or with .unhf appended if
// there is no such suffix).  A file named "-" is read from stdin and written
// to stdout.
//
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/hufftree"
	"github.com/chronos-tachyon/hufftree/bitstream"
)

const suffix = ".hf"

var (
	decompress = flag.Bool("d", false, "decompress instead of compress")
	verbosity  = flag.Int("v", 0, "diagnostic verbosity: 0 quiet, 1 summary, 4 everything")
	jobs       = flag.Int("j", runtime.NumCPU(), "maximum number of files to process at once")
	output     = flag.String("o", "", "output file (only with a single input file)")
)

type task struct {
	input  string
	output string
	stats  hufftree.Stats
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("hufftree: ")

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}
	if *output != "" && len(args) != 1 {
		log.Fatalln("-o requires exactly one input file")
	}

	tasks := make([]task, len(args))
	for i, name := range args {
		tasks[i] = task{input: name, output: outputName(name)}
	}

	var g errgroup.Group
	if *jobs > 0 {
		g.SetLimit(*jobs)
	}
	for i := range tasks {
		t := &tasks[i]
		g.Go(func() error {
			return t.run()
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalln(err)
	}

	if *verbosity >= int(hufftree.DebugLow) {
		p := message.NewPrinter(language.English) // For commas between thousands
		for _, t := range tasks {
			p.Fprintf(os.Stderr, "%s: %d bytes -> %d bytes\n", t.input, t.stats.BitsRead/8, (t.stats.BitsWritten+7)/8)
		}
	}
}

func outputName(input string) string {
	switch {
	case *output != "":
		return *output
	case input == "-":
		return "-"
	case !*decompress:
		return input + suffix
	case strings.HasSuffix(input, suffix) && len(input) > len(suffix):
		return strings.TrimSuffix(input, suffix)
	default:
		return input + ".unhf"
	}
}

func (t *task) run() error {
	in, closeIn, err := openInput(t.input)
	if err != nil {
		return err
	}
	defer closeIn()

	out, discard, err := openOutput(t.output)
	if err != nil {
		return err
	}

	p := hufftree.Processor{
		Verbosity: hufftree.Verbosity(*verbosity),
		Logger:    log.New(os.Stderr, t.input+": ", 0),
	}
	r := bitstream.NewReader(in)
	w := bitstream.NewWriter(out)
	if *decompress {
		t.stats, err = p.DecompressStats(r, w)
	} else {
		t.stats, err = p.CompressStats(r, w)
	}
	if err != nil {
		discard()
		return fmt.Errorf("%s: %w", t.input, err)
	}
	return nil
}

// openInput returns a rewindable reader for name.  Standard input is read
// into memory first.
func openInput(name string) (io.Reader, func(), error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return bytes.NewReader(data), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// openOutput returns the destination for name, plus a function that throws
// away whatever was written if the operation fails.
func openOutput(name string) (io.Writer, func(), error) {
	if name == "-" {
		// Hide Close so that bitstream.Writer leaves stdout open.
		return struct{ io.Writer }{os.Stdout}, func() {}, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	discard := func() {
		_ = f.Close()
		_ = os.Remove(name)
	}
	return f, discard, nil
}

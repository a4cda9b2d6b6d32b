package hufftree

import (
	"errors"
	"strconv"
)

// ErrCodeTooLong is returned when the Huffman tree is so deep that some
// symbol's code would exceed 64 bits.
var ErrCodeTooLong = errors.New("hufftree: Huffman code exceeds 64 bits")

// CorruptHeaderError is returned when the magic tag does not match, or when
// the tag or tree header is truncated or describes an invalid tree.
type CorruptHeaderError struct {
	Reason string
	Err    error
}

func (e *CorruptHeaderError) Error() string {
	s := "hufftree: corrupt header: " + e.Reason
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *CorruptHeaderError) Unwrap() error {
	return e.Err
}

// TruncatedStreamError is returned when the payload ends before the
// PseudoEOF code has been read.
type TruncatedStreamError struct {
	// Decoded is the number of symbols successfully decoded before the
	// input ran out.
	Decoded int64

	Err error
}

func (e *TruncatedStreamError) Error() string {
	s := "hufftree: truncated stream after " + strconv.FormatInt(e.Decoded, 10) + " symbols"
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *TruncatedStreamError) Unwrap() error {
	return e.Err
}

// InvalidTreeError is returned when a Huffman tree cannot be used for the
// requested operation, e.g. decoding walks off the edge of the tree.
type InvalidTreeError struct {
	Reason string
}

func (e *InvalidTreeError) Error() string {
	return "hufftree: invalid tree: " + e.Reason
}

var (
	_ error = (*CorruptHeaderError)(nil)
	_ error = (*TruncatedStreamError)(nil)
	_ error = (*InvalidTreeError)(nil)
)

// Package hufftree implements a lossless byte-stream compressor based on
// static Huffman codes.  The Huffman tree is serialized into the header of
// each compressed stream, so no external dictionary is needed to decode it.
//
// A compressed stream consists of:
//
//     1. the 32-bit tag MagicTreeHeader;
//
//     2. the tree, in preorder: a 0 bit for each internal node, and a 1 bit
//        followed by a 9-bit Symbol for each leaf;
//
//     3. the Code of each input byte, in order, followed by the Code of
//        PseudoEOF, padded with zero bits to a byte boundary.
//
// All fields are written most significant bit first.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package hufftree

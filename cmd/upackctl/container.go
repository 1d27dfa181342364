package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/lnx-search/upack-go/upack"
)

// Container is a small on-disk framing format for a sequence of packed
// blocks: a file header naming the element width and transform, followed
// by one record per block. It is local to this command — the upack
// package itself knows nothing about files, only byte slices.
const (
	containerMagic   = "UPK1"
	transformPlain   = 0
	transformDelta   = 1
	transformDelta1  = 2
	transformAdaptiv = 3
)

// Header describes the stream of blocks that follows it.
type Header struct {
	ElementWidth uint8 // 16 or 32
	Transform    uint8
	Count        uint32 // total element count across all blocks
}

// Block is one packed record: the live element count, the chosen bit
// width, the adaptive delta minimum (0 unless Transform == transformAdaptiv),
// and the packed bytes themselves.
type Block struct {
	N     int
	Width uint8
	DMin  uint32
	Data  []byte
}

// WriteContainer writes a header and every block to w.
func WriteContainer(w io.Writer, h Header, blocks []Block) error {
	if _, err := io.WriteString(w, containerMagic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.ElementWidth); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.Transform); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, h.Count); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(blocks))); err != nil {
		return err
	}
	for _, b := range blocks {
		if err := binary.Write(w, binary.LittleEndian, uint16(b.N)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, b.Width); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, b.DMin); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(len(b.Data))); err != nil {
			return err
		}
		if _, err := w.Write(b.Data); err != nil {
			return err
		}
	}
	return nil
}

// ReadContainer reads a header and its blocks from r.
func ReadContainer(r io.Reader) (Header, []Block, error) {
	magic := make([]byte, len(containerMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return Header{}, nil, err
	}
	if string(magic) != containerMagic {
		return Header{}, nil, fmt.Errorf("upackctl: bad magic %q", magic)
	}
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h.ElementWidth); err != nil {
		return Header{}, nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Transform); err != nil {
		return Header{}, nil, err
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Count); err != nil {
		return Header{}, nil, err
	}
	var blockCount uint32
	if err := binary.Read(r, binary.LittleEndian, &blockCount); err != nil {
		return Header{}, nil, err
	}
	blocks := make([]Block, blockCount)
	for i := range blocks {
		var n16 uint16
		if err := binary.Read(r, binary.LittleEndian, &n16); err != nil {
			return Header{}, nil, err
		}
		var width uint8
		if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
			return Header{}, nil, err
		}
		var dMin uint32
		if err := binary.Read(r, binary.LittleEndian, &dMin); err != nil {
			return Header{}, nil, err
		}
		var dataLen uint32
		if err := binary.Read(r, binary.LittleEndian, &dataLen); err != nil {
			return Header{}, nil, err
		}
		data := make([]byte, dataLen)
		if _, err := io.ReadFull(r, data); err != nil {
			return Header{}, nil, err
		}
		blocks[i] = Block{N: int(n16), Width: width, DMin: dMin, Data: data}
	}
	return h, blocks, nil
}

// PackU32Blocks splits values into X128-sized blocks and packs each with
// the given transform, chaining "last" across blocks.
func PackU32Blocks(values []uint32, transform uint8) []Block {
	var blocks []Block
	var last, dMin uint32
	for off := 0; off < len(values); off += upack.X128 {
		n := upack.X128
		if off+n > len(values) {
			n = len(values) - off
		}
		chunk := values[off : off+n]
		buf := make([]byte, 4*upack.X128)
		var details upack.CompressionDetails
		switch transform {
		case transformDelta:
			details, last = upack.PackDelta32(chunk, last, n, buf)
		case transformDelta1:
			details, last = upack.PackDelta1_32(chunk, last, n, buf)
		case transformAdaptiv:
			details, last, dMin = upack.AdaptivePackDelta32(chunk, last, n, buf)
		default:
			details = upack.Pack32(chunk, n, buf)
		}
		blocks = append(blocks, Block{N: n, Width: details.BitWidth, DMin: dMin, Data: buf[:details.BytesWritten]})
	}
	return blocks
}

// UnpackU32Blocks is the inverse of PackU32Blocks.
func UnpackU32Blocks(blocks []Block, transform uint8) []uint32 {
	var out []uint32
	var last uint32
	for _, b := range blocks {
		dst := make([]uint32, b.N)
		switch transform {
		case transformDelta:
			last = upack.UnpackDelta32(b.Data, int(b.Width), b.N, last, dst)
		case transformDelta1:
			last = upack.UnpackDelta1_32(b.Data, int(b.Width), b.N, last, dst)
		case transformAdaptiv:
			last = upack.AdaptiveUnpackDelta32(b.Data, int(b.Width), b.N, last, b.DMin, dst)
		default:
			upack.Unpack32(b.Data, int(b.Width), b.N, dst)
		}
		out = append(out, dst...)
	}
	return out
}

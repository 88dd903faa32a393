package loader

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Encoding is a compression format a source may be stored in.
type Encoding string

// Supported encodings.
const (
	Identity Encoding = ""
	Gzip     Encoding = "gzip"
	Zstd     Encoding = "zstd"
	Brotli   Encoding = "br"
)

// maxSourceSize bounds a decompressed source.
const maxSourceSize = 64 << 20

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

var suffixes = map[Encoding]string{
	Gzip:   ".gz",
	Zstd:   ".zst",
	Brotli: ".br",
}

// detectEncoding goes by file suffix first. Brotli streams carry no magic
// number, so stdin is only sniffed for gzip and zstd.
func detectEncoding(name string, data []byte) Encoding {
	for encoding, suffix := range suffixes {
		if strings.HasSuffix(name, suffix) {
			return encoding
		}
	}
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	}
	return Identity
}

func trimEncodingSuffix(name string, encoding Encoding) string {
	return strings.TrimSuffix(name, suffixes[encoding])
}

func decompress(encoding Encoding, data []byte) ([]byte, error) {
	var r io.Reader
	switch encoding {
	case Identity:
		return data, nil
	case Gzip:
		gr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = gr.Close() }()
		r = gr
	case Zstd:
		zr, err := zstd.NewReader(bytes.NewReader(data), zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case Brotli:
		r = brotli.NewReader(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}

	out, err := io.ReadAll(io.LimitReader(r, maxSourceSize+1))
	if err != nil {
		return nil, err
	}
	if len(out) > maxSourceSize {
		return nil, fmt.Errorf("decompressed source is larger than %d bytes", maxSourceSize)
	}
	return out, nil
}

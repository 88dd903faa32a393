package loader

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liuxd6825/elemx/lib/fsext"
	"github.com/liuxd6825/elemx/lib/testutils"
)

type errorReader string

func (e errorReader) Read(_ []byte) (int, error) {
	return 0, errors.New((string)(e))
}

var _ io.Reader = errorReader("")

const source = `page(title: "Home") { "hello" }`

func gzipped(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func zstded(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer func() { _ = enc.Close() }()
	return enc.EncodeAll(data, nil)
}

func brotlied(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := brotli.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func newLogger(t *testing.T) logrus.FieldLogger {
	return testutils.NewLogger(t, nil)
}

func TestReadSourceSTDINError(t *testing.T) {
	t.Parallel()

	_, err := ReadSource(newLogger(t), Stdin, "", nil, errorReader("1234"))
	require.EqualError(t, err, "1234")
}

func TestReadSourceSTDIN(t *testing.T) {
	t.Parallel()

	sd, err := ReadSource(newLogger(t), Stdin, "/pwd", nil, bytes.NewReader(gzipped(t, []byte(source))))
	require.NoError(t, err)
	assert.Equal(t, &SourceData{
		Filename: Stdin,
		Path:     Stdin,
		Data:     []byte(source),
		Encoding: Gzip,
	}, sd)
}

func TestReadSourceRelative(t *testing.T) {
	t.Parallel()

	fs := fsext.NewMemMapFs()
	require.NoError(t, fsext.WriteFile(fs, "/path/to/views/page.elx", []byte(source), 0o644))

	sd, err := ReadSource(newLogger(t), "../views/page.elx", "/path/to/pwd", fs, nil)
	require.NoError(t, err)
	assert.Equal(t, "../views/page.elx", sd.Filename)
	assert.Equal(t, []byte(source), sd.Data)
	assert.Equal(t, Identity, sd.Encoding)
}

func TestReadSourceMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadSource(newLogger(t), "nope.elx", "/", fsext.NewMemMapFs(), nil)
	require.EqualError(t, err, "the source file 'nope.elx' could not be found")
}

func TestReadSourceCompressed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		data     []byte
		encoding Encoding
	}{
		{"page.elx.gz", gzipped(t, []byte(source)), Gzip},
		{"page.elx.zst", zstded(t, []byte(source)), Zstd},
		{"page.elx.br", brotlied(t, []byte(source)), Brotli},
		{"page.elx", zstded(t, []byte(source)), Zstd},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			fs := fsext.NewMemMapFs()
			require.NoError(t, fsext.WriteFile(fs, "/src/"+tc.name, tc.data, 0o644))

			sd, err := ReadSource(newLogger(t), tc.name, "/src", fs, nil)
			require.NoError(t, err)
			assert.Equal(t, "page.elx", sd.Filename)
			assert.Equal(t, tc.encoding, sd.Encoding)
			assert.Equal(t, source, string(sd.Data))
		})
	}
}

func TestReadSourceCorrupt(t *testing.T) {
	t.Parallel()

	fs := fsext.NewMemMapFs()
	require.NoError(t, fsext.WriteFile(fs, "/page.elx.gz", []byte("not gzip"), 0o644))

	_, err := ReadSource(newLogger(t), "page.elx.gz", "/", fs, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't decompress page.elx.gz")
}

func TestReadSourceMap(t *testing.T) {
	t.Parallel()

	const sm = `{"version":3,"file":"page.elx","sources":["page.src"],"names":[],"mappings":"AAAA"}`
	fs := fsext.NewMemMapFs()
	require.NoError(t, fsext.WriteFile(fs, "/maps/page.elx.map.gz", gzipped(t, []byte(sm)), 0o644))

	consumer, err := ReadSourceMap(fs, "/maps", "page.elx.map.gz")
	require.NoError(t, err)
	require.NotNil(t, consumer)
	assert.Equal(t, "page.elx", consumer.File())

	_, err = ReadSourceMap(fs, "/maps", "missing.map")
	require.Error(t, err)

	require.NoError(t, fsext.WriteFile(fs, "/maps/bad.map", []byte("{"), 0o644))
	_, err = ReadSourceMap(fs, "/maps", "bad.map")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "couldn't parse source map bad.map")
}

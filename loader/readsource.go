// Package loader reads element sources from the file system or stdin,
// undoing any gzip, zstd or brotli compression, and reads source maps.
package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/liuxd6825/elemx/lib/fsext"
)

// Stdin is the source name that reads from standard input.
const Stdin = "-"

// SourceData wraps a loaded source file.
type SourceData struct {
	// Filename is the name positions are reported against: the name given
	// by the user without any compression suffix.
	Filename string
	// Path is the resolved location, or Stdin.
	Path     string
	Data     []byte
	Encoding Encoding
}

// ReadSource reads src, which is either Stdin or a path relative to pwd.
func ReadSource(
	logger logrus.FieldLogger, src, pwd string, fs fsext.Fs, stdin io.Reader,
) (*SourceData, error) {
	var (
		data []byte
		path string
		err  error
	)
	if src == Stdin {
		path = Stdin
		if data, err = io.ReadAll(stdin); err != nil {
			return nil, err
		}
	} else {
		path = fsext.Abs(pwd, src)
		if data, err = fsext.ReadFile(fs, path); err != nil {
			if errors.Is(err, fsext.ErrNotExist) {
				return nil, fmt.Errorf("the source file '%s' could not be found", src)
			}
			return nil, fmt.Errorf("couldn't read %s: %w", src, err)
		}
	}

	encoding := detectEncoding(src, data)
	if encoding != Identity {
		logger.WithFields(logrus.Fields{"source": src, "encoding": encoding}).Debug("Decompressing source")
		if data, err = decompress(encoding, data); err != nil {
			return nil, fmt.Errorf("couldn't decompress %s: %w", src, err)
		}
	}

	return &SourceData{
		Filename: trimEncodingSuffix(filepath.ToSlash(src), encoding),
		Path:     path,
		Data:     data,
		Encoding: encoding,
	}, nil
}

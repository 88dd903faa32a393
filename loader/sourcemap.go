package loader

import (
	"fmt"

	"github.com/go-sourcemap/sourcemap"

	"github.com/liuxd6825/elemx/lib/fsext"
)

// ReadSourceMap reads and parses the source map at path, relative to pwd.
// Compressed maps are accepted like compressed sources.
func ReadSourceMap(fs fsext.Fs, pwd, path string) (*sourcemap.Consumer, error) {
	abs := fsext.Abs(pwd, path)
	data, err := fsext.ReadFile(fs, abs)
	if err != nil {
		return nil, fmt.Errorf("couldn't read source map %s: %w", path, err)
	}
	encoding := detectEncoding(path, data)
	if data, err = decompress(encoding, data); err != nil {
		return nil, fmt.Errorf("couldn't decompress source map %s: %w", path, err)
	}

	sm, err := sourcemap.Parse(trimEncodingSuffix(abs, encoding), data)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse source map %s: %w", path, err)
	}
	return sm, nil
}

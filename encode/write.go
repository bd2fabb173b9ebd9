package encode

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/keenwrite/definitions/format"
	"github.com/keenwrite/definitions/ir"
)

// WriteFile encodes node and replaces the contents of path with it. The
// format follows the extension of path unless an EncodeFormat option is
// given.
func WriteFile(path string, node *ir.Node, opts ...EncodeOption) (err error) {
	es := newEncState(opts)
	if !es.formatSet {
		opts = append(opts, EncodeFormat(format.FromPath(path)))
	}
	opts = append(opts, EncodeColors(nil))
	mode := fs.FileMode(0o644)
	if fi, statErr := os.Stat(path); statErr == nil {
		mode = fi.Mode().Perm()
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ir.ErrIO, statErr)
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if err = Encode(node, f, opts...); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ir.ErrIO, path, err)
	}
	if err = f.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	if err = f.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ir.ErrIO, err)
	}
	return nil
}

package adapt

import (
	"github.com/keenwrite/definitions/defn"
	"github.com/keenwrite/definitions/parse"
)

// TreeAdapter is what an editor needs to load definitions into a tree and
// write them back.
type TreeAdapter interface {
	Adapt(rootLabel string) (*defn.Node, error)
	Export(tree *defn.Node, path string) ([]Ambiguity, error)
}

// FileAdapter reads its tree from Path.
type FileAdapter struct {
	Path       string
	ParseOpts  []parse.ParseOption
	ExportOpts []ExportOption
}

var _ TreeAdapter = (*FileAdapter)(nil)

func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{Path: path}
}

func (a *FileAdapter) Adapt(rootLabel string) (*defn.Node, error) {
	return Load(a.Path, rootLabel, a.ParseOpts...)
}

func (a *FileAdapter) Export(tree *defn.Node, path string) ([]Ambiguity, error) {
	return Save(tree, path, a.ExportOpts...)
}

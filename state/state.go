package state

import (
	"io/fs"
	"path/filepath"
	"slices"
	"sync"

	. "github.com/taglink/taglink-lsp/types"
	. "github.com/taglink/taglink-lsp/utils"
)

var AllExt = []string{"html", "htm", "xhtml", "xml", "svg", "vue"}

type Root struct {
	Folders UriSet

	UpdateLock sync.Mutex

	debugf func(msg string, args ...any)
}

func CreateRoot(debugf func(msg string, args ...any)) *Root {
	return &Root{
		Folders: make(UriSet),
		debugf:  debugf,
	}
}

func (root *Root) SetFolders(folders []Uri) error {
	root.Folders = make(UriSet)

	for _, uri := range folders {
		uri, err := NormalizeUri(uri)

		if err != nil {
			return err
		}

		root.Folders.Set(uri)
	}

	return nil
}

// MarkupUris walks every workspace folder and yields uris of markup files.
func (root *Root) MarkupUris(yield func(Uri) error) {
	for folder := range root.Folders {
		err := WalkFiles(folder, AllExt, func(uri Uri, ext string) error {
			return yield(uri)
		})

		if err != nil {
			root.debugf("walk %s error: %s", folder, err.Error())
		}
	}
}

func IsMarkupUri(uri Uri) bool {
	return slices.Contains(AllExt, Ext(uri))
}

func WalkFiles(uri Uri, extensions []string, cb func(Uri, string) error) (err error) {
	rootPath, err := UriToPath(uri)

	if err != nil {
		return
	}

	return filepath.Walk(rootPath, func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		ext := Ext(info.Name())

		if !slices.Contains(extensions, ext) {
			return nil
		}

		return cb(ToUri(path), ext)
	})
}

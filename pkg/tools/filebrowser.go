package tools

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/phroun/retropda"
)

// Node is one entry under a directory.
type Node struct {
	Path  string
	Name  string
	IsDir bool
}

// ListDir returns the entries of dir, directories first, each group sorted
// case-insensitively. Dot-files are skipped unless showHidden is set.
func ListDir(dir string, showHidden bool) ([]Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil {
				isDir = info.IsDir()
			}
		}
		nodes = append(nodes, Node{Path: filepath.Join(dir, name), Name: name, IsDir: isDir})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsDir != nodes[j].IsDir {
			return nodes[i].IsDir
		}
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})
	return nodes, nil
}

// FilesystemRoot is "/" on Unix and the current volume root on Windows.
func FilesystemRoot() string {
	if runtime.GOOS == "windows" {
		wd, err := os.Getwd()
		if err == nil {
			if vol := filepath.VolumeName(wd); vol != "" {
				return vol + `\`
			}
		}
		return `C:\`
	}
	return "/"
}

// FileBrowser is a read-only tree of the filesystem. Directories are only
// read when the tree asks for their children.
type FileBrowser struct {
	root       string
	showHidden bool
	logger     *retropda.Logger

	mu    sync.Mutex
	isDir map[string]bool

	tree   *homeTree
	object fyne.CanvasObject
}

// NewFileBrowser builds the browser rooted at root.
func NewFileBrowser(root string, showHidden bool, logger *retropda.Logger, e retropda.Emitter) *FileBrowser {
	v := &FileBrowser{
		root:       root,
		showHidden: showHidden,
		logger:     logger,
		isDir:      map[string]bool{root: true},
	}
	v.tree = &homeTree{onEscape: navigateHome(e)}
	v.tree.Root = root
	v.tree.ChildUIDs = v.Children
	v.tree.IsBranch = v.IsBranch
	v.tree.CreateNode = func(bool) fyne.CanvasObject {
		return widget.NewLabel("")
	}
	v.tree.UpdateNode = func(id widget.TreeNodeID, _ bool, o fyne.CanvasObject) {
		o.(*widget.Label).SetText(v.label(id))
	}
	v.tree.ExtendBaseWidget(v.tree)
	v.object = container.NewBorder(
		title("File Explorer"),
		homeButton(e),
		nil, nil,
		v.tree,
	)
	return v
}

// Children lists the node IDs under id.
func (v *FileBrowser) Children(id widget.TreeNodeID) []widget.TreeNodeID {
	nodes, err := ListDir(id, v.showHidden)
	if err != nil {
		v.logger.Debug("list %s: %v", id, err)
		return nil
	}
	ids := make([]widget.TreeNodeID, len(nodes))
	v.mu.Lock()
	for i, n := range nodes {
		ids[i] = n.Path
		v.isDir[n.Path] = n.IsDir
	}
	v.mu.Unlock()
	return ids
}

// IsBranch reports whether id is a directory.
func (v *FileBrowser) IsBranch(id widget.TreeNodeID) bool {
	v.mu.Lock()
	known, ok := v.isDir[id]
	v.mu.Unlock()
	if ok {
		return known
	}
	info, err := os.Stat(id)
	return err == nil && info.IsDir()
}

func (v *FileBrowser) label(id string) string {
	if id == v.root {
		return id
	}
	return filepath.Base(id)
}

// Root returns the top of the tree.
func (v *FileBrowser) Root() string { return v.root }

// Object implements retropda.View.
func (v *FileBrowser) Object() fyne.CanvasObject { return v.object }

// Close implements retropda.View.
func (v *FileBrowser) Close() {
	v.mu.Lock()
	v.isDir = map[string]bool{}
	v.mu.Unlock()
}

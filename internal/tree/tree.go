// Package tree describes a scaffold: a root folder with an ordered list of
// files and nested folders.
package tree

// Kind tells a file node from a folder node.
type Kind int

const (
	KindFile Kind = iota
	KindFolder
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindFolder:
		return "folder"
	default:
		return "unknown"
	}
}

// Node is one entry of a scaffold. Children is only meaningful for folders
// and keeps declaration order.
type Node struct {
	Kind     Kind
	Name     string
	Children []Node
}

// File returns a file node.
func File(name string) Node {
	return Node{Kind: KindFile, Name: name}
}

// Folder returns a folder node with the given children in order.
func Folder(name string, children ...Node) Node {
	return Node{Kind: KindFolder, Name: name, Children: children}
}

// IsFolder reports whether n is a folder.
func (n Node) IsFolder() bool { return n.Kind == KindFolder }

// Root is the entry point of a scaffold: a single root folder and its contents.
type Root struct {
	Name     string
	Children []Node
}

// New returns a root named name with the given children.
func New(name string, children ...Node) Root {
	return Root{Name: name, Children: children}
}

// WalkFunc is called for every node. parents holds the names of the folders
// between the root (exclusive) and n.
type WalkFunc func(parents []string, n Node) error

// Walk visits all nodes depth-first in declaration order. A non-nil error
// from fn stops the walk and is returned.
func (r Root) Walk(fn WalkFunc) error {
	return walk(nil, r.Children, fn)
}

func walk(parents []string, nodes []Node, fn WalkFunc) error {
	for _, n := range nodes {
		if err := fn(parents, n); err != nil {
			return err
		}
		if n.Kind == KindFolder {
			next := append(parents[:len(parents):len(parents)], n.Name)
			if err := walk(next, n.Children, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stats counts folders and files below the root.
func (r Root) Stats() (folders, files int) {
	_ = r.Walk(func(_ []string, n Node) error {
		switch n.Kind {
		case KindFolder:
			folders++
		case KindFile:
			files++
		}
		return nil
	})
	return folders, files
}

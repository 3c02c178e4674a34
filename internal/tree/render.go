package tree

import (
	"bufio"
	"io"
)

// Render writes r in tree(1) style. Folders get a trailing "/" so that empty
// folders survive a round trip through parser.Parse.
func Render(w io.Writer, r Root) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(r.Name + "/\n")
	renderNodes(bw, "", r.Children)
	return bw.Flush()
}

func renderNodes(w *bufio.Writer, prefix string, nodes []Node) {
	for i, n := range nodes {
		last := i == len(nodes)-1
		marker, indent := "├── ", "│   "
		if last {
			marker, indent = "└── ", "    "
		}
		name := n.Name
		if n.IsFolder() {
			name += "/"
		}
		w.WriteString(prefix + marker + name + "\n")
		if n.IsFolder() {
			renderNodes(w, prefix+indent, n.Children)
		}
	}
}

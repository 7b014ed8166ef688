package domain

type NodeType string

const (
	NodeFolder NodeType = "folder"
	NodeFile   NodeType = "file"
)

// NodeItem is a node of a navigation tree built from hierarchical entry ids.
// Leaves are files carrying the entry path, inner nodes are folders named
// after their path segment.
type NodeItem struct {
	Name     string     `json:"name"`
	Type     NodeType   `json:"type"`
	Path     string     `json:"path"`
	Level    int        `json:"level"`
	Children []NodeItem `json:"children,omitempty"`
}

func (n NodeItem) IsFolder() bool { return n.Type == NodeFolder }
func (n NodeItem) IsFile() bool   { return n.Type == NodeFile }

// Package tree turns flat, slash separated entry ids into navigation trees.
package tree

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MrSnakeDoc/garden/internal/domain"
)

// scopeSegment is dropped from ids: wiki pages may be stored under a
// "wiki/" prefix that duplicates the collection name.
const scopeSegment = "wiki"

// Builder builds trees with names ordered for a language.
type Builder struct {
	lang language.Tag
}

// NewBuilder returns a builder that sorts names the way lang does.
func NewBuilder(lang language.Tag) *Builder {
	return &Builder{lang: lang}
}

// node is the mutable form used while building. It is converted to
// domain.NodeItem values before leaving the package.
type node struct {
	item     domain.NodeItem
	children []*node
}

type leaf struct {
	id    string
	path  string
	title string
}

// Build returns the tree of the entries of collection.
//
// Entries are taken in title order. Every id segment but the last becomes a
// folder named after the segment, shared by entries with the same prefix;
// the last one becomes a file named after the entry title. Top level nodes
// are sorted folders first, then by name. Deeper levels keep title order.
func (b *Builder) Build(entries []domain.Entry, collection string) []domain.NodeItem {
	col := collate.New(b.lang)

	leaves := make([]leaf, 0, len(entries))
	for _, e := range entries {
		if e.Collection != collection {
			continue
		}
		leaves = append(leaves, leaf{id: e.ID, path: e.Path(), title: e.Data.Title})
	}
	sort.SliceStable(leaves, func(i, j int) bool {
		return col.CompareString(leaves[i].title, leaves[j].title) < 0
	})

	var roots []*node
	for _, l := range leaves {
		segments := splitID(l.id)
		if len(segments) == 0 {
			continue
		}

		level := &roots
		prefix := "/" + collection
		for depth, segment := range segments {
			if depth == len(segments)-1 {
				*level = append(*level, &node{item: domain.NodeItem{
					Name:  l.title,
					Type:  domain.NodeFile,
					Path:  l.path,
					Level: depth,
				}})
				break
			}

			prefix += "/" + segment
			folder := findFolder(*level, segment)
			if folder == nil {
				folder = &node{item: domain.NodeItem{
					Name:  segment,
					Type:  domain.NodeFolder,
					Path:  prefix,
					Level: depth,
				}}
				*level = append(*level, folder)
			}
			level = &folder.children
		}
	}

	out := freeze(roots)
	sortLevel(out, col, true)
	return out
}

// SortFilesFirst returns a copy of nodes where every level lists files
// before folders, each group sorted by name.
func (b *Builder) SortFilesFirst(nodes []domain.NodeItem) []domain.NodeItem {
	return sortFilesFirst(nodes, collate.New(b.lang))
}

func sortFilesFirst(nodes []domain.NodeItem, col *collate.Collator) []domain.NodeItem {
	if nodes == nil {
		return nil
	}
	out := make([]domain.NodeItem, len(nodes))
	for i, n := range nodes {
		out[i] = n
		out[i].Children = sortFilesFirst(n.Children, col)
	}
	sortLevel(out, col, false)
	return out
}

// CountFiles counts the file nodes of the tree.
func CountFiles(nodes []domain.NodeItem) int {
	count := 0
	for _, n := range nodes {
		if n.IsFile() {
			count++
		}
		count += CountFiles(n.Children)
	}
	return count
}

// CountFolders counts the level 0 folders and the folders nested below
// them. Folders reached without a level 0 folder ancestor are not counted,
// so passing a subtree yields 0.
func CountFolders(nodes []domain.NodeItem) int {
	count := 0
	for _, n := range nodes {
		if n.IsFolder() && n.Level == 0 {
			count += 1 + countNestedFolders(n.Children)
		}
	}
	return count
}

func countNestedFolders(nodes []domain.NodeItem) int {
	count := 0
	for _, n := range nodes {
		if n.IsFolder() {
			count += 1 + countNestedFolders(n.Children)
		}
	}
	return count
}

func splitID(id string) []string {
	parts := strings.Split(id, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p == "" || p == scopeSegment {
			continue
		}
		segments = append(segments, p)
	}
	return segments
}

func findFolder(level []*node, name string) *node {
	for _, n := range level {
		if n.item.IsFolder() && n.item.Name == name {
			return n
		}
	}
	return nil
}

func freeze(nodes []*node) []domain.NodeItem {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]domain.NodeItem, len(nodes))
	for i, n := range nodes {
		out[i] = n.item
		out[i].Children = freeze(n.children)
	}
	return out
}

// sortLevel orders one level in place: folders first when foldersFirst is
// set, files first otherwise, then by name.
func sortLevel(nodes []domain.NodeItem, col *collate.Collator, foldersFirst bool) {
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Type != b.Type {
			return a.IsFolder() == foldersFirst
		}
		return col.CompareString(a.Name, b.Name) < 0
	})
}

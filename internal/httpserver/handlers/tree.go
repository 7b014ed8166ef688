package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/garden/internal/domain"
	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/tree"
)

const orderFilesFirst = "files-first"

type treeResponse struct {
	Collection string            `json:"collection"`
	Files      int               `json:"files"`
	Folders    int               `json:"folders"`
	Nodes      []domain.NodeItem `json:"nodes"`
}

// Tree serves the navigation tree of a collection. Folders come first unless
// order=files-first is given.
func Tree(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := pathParam(r, "collection")
		if _, ok := d.Site.Collection(name); !ok {
			writeError(w, http.StatusNotFound, "unknown collection")
			return
		}

		switch order := r.URL.Query().Get("order"); order {
		case "", orderFilesFirst:
		default:
			writeError(w, http.StatusBadRequest, "order must be empty or "+orderFilesFirst)
			return
		}

		entries, err := d.Content.Collection(r.Context(), name)
		if err != nil {
			internalError(w, r, d, "failed to load collection", err)
			return
		}

		nodes := d.Trees.Build(entries, name)
		if r.URL.Query().Get("order") == orderFilesFirst {
			nodes = d.Trees.SortFilesFirst(nodes)
		}

		writeJSON(w, http.StatusOK, treeResponse{
			Collection: name,
			Files:      tree.CountFiles(nodes),
			Folders:    tree.CountFolders(nodes),
			Nodes:      nodes,
		})
	}
}

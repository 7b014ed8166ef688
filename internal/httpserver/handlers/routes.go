package handlers

import (
	"net/http"
	"time"

	"github.com/MrSnakeDoc/garden/internal/httpserver/deps"
	"github.com/MrSnakeDoc/garden/internal/index"
	"github.com/MrSnakeDoc/garden/internal/routes"
)

type routesResponse struct {
	Count   int            `json:"count"`
	BuiltAt time.Time      `json:"built_at"`
	Routes  []routes.Route `json:"routes"`
}

// Routes lists the indexed routes sorted by path, optionally restricted to
// one group with ?group=.
func Routes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !d.Routes.Ready() {
			writeError(w, http.StatusServiceUnavailable, "routes are not built yet")
			return
		}

		group := r.URL.Query().Get("group")
		out := []routes.Route{}
		for _, rt := range d.Routes.All() {
			if group != "" && rt.Group != group {
				continue
			}
			out = append(out, withoutBody(rt))
		}

		writeJSON(w, http.StatusOK, routesResponse{
			Count:   len(out),
			BuiltAt: d.Routes.BuiltAt(),
			Routes:  out,
		})
	}
}

type resolveResponse struct {
	Route   routes.Route    `json:"route"`
	Sitemap routes.Priority `json:"sitemap"`
}

// Resolve looks a site path up in the route index.
func Resolve(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Query().Get("path")
		if path == "" {
			writeError(w, http.StatusBadRequest, "missing path")
			return
		}

		rt, ok := d.Routes.Lookup(path)
		if !ok {
			writeError(w, http.StatusNotFound, "route not found")
			return
		}
		writeJSON(w, http.StatusOK, resolveResponse{
			Route:   rt,
			Sitemap: routes.SitemapPriority(index.Normalize(path)),
		})
	}
}

func withoutBody(rt routes.Route) routes.Route {
	if rt.Props.Entry != nil {
		e := *rt.Props.Entry
		e.Body = ""
		e.Rendered = ""
		rt.Props.Entry = &e
	}
	return rt
}

package config

import "github.com/MrSnakeDoc/garden/internal/domain"

// DefaultSite is the site served when no site file is configured.
func DefaultSite() *Site {
	pages := map[string]domain.Meta{
		PageHome: {
			Title:          "Inicio",
			Description:    "Notas sobre tecnología, desarrollo web y aprendizajes del día a día.",
			EntriesPerPage: 15,
			URL:            "/",
			Published:      true,
		},
		PageTags: {
			Title:          "Tags",
			Description:    "Explora contenido organizado por temas: desarrollo web, herramientas, arquitectura y más.",
			EntriesPerPage: 20,
			URL:            "/tags",
			Published:      true,
		},
		PageArchive: {
			Title:          "Archivo",
			Description:    "Cronología completa de artículos, notas y proyectos publicados en este sitio.",
			EntriesPerPage: 20,
			URL:            "/archive",
			Published:      true,
		},
		PageReading: {
			Title:          "Reading",
			Description:    "Artículos, posts y recursos que he guardado para leer, aprender y consultar.",
			EntriesPerPage: 20,
			URL:            "/reading",
			Published:      true,
		},
		PageBookmarks: {
			Title:          "Bookmarks",
			Description:    "Colección curada de enlaces útiles sobre desarrollo, diseño y tecnología.",
			EntriesPerPage: 50,
			URL:            "/bookmarks",
			Published:      true,
		},
		PageMusic: {
			Title:       "Music",
			Description: "Lo que escucho mientras programo: estadísticas y últimas reproducciones de Last.fm.",
			URL:         "/music",
			Published:   true,
		},
		"blog": {
			Title:          "Blog",
			Description:    "Artículos sobre desarrollo web, tecnología y experiencias construyendo software.",
			EntriesPerPage: 10,
			URL:            "/blog",
			Published:      true,
		},
		"now": {
			Title:       "Now",
			Description: "En qué estoy trabajando ahora: proyectos actuales, aprendizajes y prioridades.",
			URL:         "/now",
			Published:   true,
		},
		"projects": {
			Title:          "Proyectos",
			Description:    "Proyectos personales, experimentos y cosas que estoy construyendo o he construido.",
			EntriesPerPage: 5,
			URL:            "/projects",
			Published:      true,
		},
		"about": {
			Title:       "About",
			Description: "Quién soy, qué hago y por qué existe este sitio.",
			URL:         "/about",
			Published:   true,
		},
		"blogroll": {
			Title:       "Blog Roll",
			Description: "Blogs y sitios personales que leo y recomiendo.",
			URL:         "/blogroll",
			Published:   true,
		},
		"uses": {
			Title:       "Uses",
			Description: "Herramientas, software y setup que uso para programar y trabajar cada día.",
			URL:         "/uses",
			Published:   true,
		},
		"wiki": {
			Title:          "Wiki",
			Description:    "Base de conocimiento técnico: guías, referencias y apuntes de desarrollo.",
			EntriesPerPage: 10,
			URL:            "/wiki",
			Published:      true,
		},
		"feed": {
			Title:       "Feed",
			Description: "Suscríbete al RSS feed para recibir nuevos artículos en tu lector favorito.",
			URL:         "/rss.xml",
			Blank:       true,
			Published:   true,
		},
	}

	return &Site{
		Name:        "ansango",
		Title:       "ansango",
		Description: "Notas sobre tecnología, desarrollo web y aprendizajes del día a día.",
		URL:         "https://ansango.com",
		Lang:        "es-ES",
		Author:      "ansango",
		Pages:       pages,
		Collections: []CollectionDef{
			{Name: "blog", Base: "blog", Pattern: "**/*.md"},
			{Name: "now", Base: ".", Pattern: "now.md", Index: true},
			{Name: "projects", Base: "projects", Pattern: "**/*.md"},
			{Name: "about", Base: ".", Pattern: "about.md", Index: true},
			{Name: "blogroll", Base: ".", Pattern: "blogroll.md", Index: true},
			{Name: "uses", Base: ".", Pattern: "uses.md", Index: true},
			{Name: "wiki", Base: "wiki", Pattern: "**/*.md"},
		},
		Navigation: []NavGroup{
			{Name: "personal", Items: []NavItem{{Page: PageHome}, {Page: "now"}, {Page: "uses"}, {Page: "about"}, {Page: PageMusic}}},
			{Name: "content", Items: []NavItem{{Page: "blog"}, {Page: "projects"}, {Page: "blogroll"}, {Page: PageBookmarks}, {Page: PageReading}}},
			{Name: "explore", Items: []NavItem{{Page: PageTags}, {Page: "wiki"}, {Page: PageArchive}, {Page: "feed"}}},
			{Name: "social", Items: []NavItem{
				{Link: &domain.Meta{Title: "GitHub", URL: "https://github.com/ansango", Blank: true, Published: true}},
				{Link: &domain.Meta{Title: "LinkedIn", URL: "https://www.linkedin.com/in/ansango/", Blank: true, Published: true}},
			}},
		},
	}
}

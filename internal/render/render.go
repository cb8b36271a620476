package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/alfagnish/userbook/internal/store"
)

//go:embed templates
var templatesFS embed.FS

// pageFiles lists every page template. Each page defines a "content" block
// that the shared layout wraps.
var pageFiles = []string{
	"home.html",
	"users/index.html",
	"users/show.html",
	"error.html",
}

// Renderer holds the parsed template set for every page, each combined with
// the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses all embedded templates. Returns an error if any page is missing
// or malformed, so a broken template fails at startup rather than on first
// request.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"firstName": store.User.FirstName,
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, page := range pageFiles {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS,
			"templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		pages[page] = t
	}
	return &Renderer{pages: pages}, nil
}

// HTML renders the named page inside the layout and writes it with the given
// status code. The page is rendered to a buffer first so a template error
// never produces a half-written response.
func (rn *Renderer) HTML(w http.ResponseWriter, status int, page string, data interface{}) {
	t, ok := rn.pages[page]
	if !ok {
		log.Printf("render: unknown page %q", page)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Printf("render %s: %v", page, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// IndexData is the payload for the user listing page.
type IndexData struct {
	Users []store.User
}

// ShowData is the payload for the user detail page.
type ShowData struct {
	User store.User
}

// ErrorData is the payload for the error page.
type ErrorData struct {
	Status  int
	Message string
}

package page

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"sync"

	"github.com/rs/zerolog"
)

//go:embed assets/index.html
var indexTmpl string

// Params is the data injected into the client page.
type Params struct {
	AppName string
	Version string
}

// Templator renders the embedded client page. The template is parsed once,
// on first use.
type Templator struct {
	tmpl *template.Template
	once sync.Once
}

func (t *Templator) Render(params Params) ([]byte, error) {
	t.once.Do(func() {
		t.tmpl = template.Must(template.New("index").Parse(indexTmpl))
	})

	var data bytes.Buffer
	if err := t.tmpl.Execute(&data, params); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

// Handler serves the client page at the root path. Anything else under /
// that is not handled elsewhere is a 404.
func Handler(params Params, logger *zerolog.Logger) http.Handler {
	templator := &Templator{}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		html, err := templator.Render(params)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to render client page")
			http.Error(w, "failed to render page", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(html)
	})
}

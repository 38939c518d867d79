package http

import (
	"net/http"
	"strings"

	harticle "news-explorer/internal/handler/http/article"
	"news-explorer/internal/handler/http/auth"
	hnews "news-explorer/internal/handler/http/news"
	"news-explorer/internal/handler/http/respond"
	huser "news-explorer/internal/handler/http/user"
	artUC "news-explorer/internal/usecase/article"
	newsUC "news-explorer/internal/usecase/news"
	userUC "news-explorer/internal/usecase/user"
	"news-explorer/internal/validation"
)

// RouterConfig lists what the router mounts. Health is optional.
type RouterConfig struct {
	Prefix    string
	Users     *userUC.Service
	Articles  *artUC.Service
	News      *newsUC.Service
	Tokens    auth.TokenVerifier
	Validator *validation.Validator
	Health    http.Handler
}

var probeMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}

// NewRouter registers the API routes under cfg.Prefix plus /health, /live
// and /metrics. Any other request gets a JSON 404, or a JSON 405 with an
// Allow header when the path exists for another method.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	huser.Register(mux, cfg.Prefix, cfg.Users, cfg.Validator, cfg.Tokens)
	harticle.Register(mux, cfg.Prefix, cfg.Articles, cfg.Validator, cfg.Tokens)
	hnews.Register(mux, cfg.Prefix, cfg.News)

	if cfg.Health != nil {
		mux.Handle("GET /health", cfg.Health)
	}
	mux.Handle("GET /live", &LiveHandler{})
	mux.Handle("GET /metrics", MetricsHandler())

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(mux, r); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			respond.MethodNotAllowed(w, r)
			return
		}
		respond.NotFound(w, r)
	})
	return mux
}

// allowedMethods returns the methods for which a specific route matches r's path.
func allowedMethods(mux *http.ServeMux, r *http.Request) []string {
	var allowed []string
	for _, m := range probeMethods {
		if m == r.Method {
			continue
		}
		probe := r.Clone(r.Context())
		probe.Method = m
		if _, pattern := mux.Handler(probe); pattern != "" && pattern != "/" {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

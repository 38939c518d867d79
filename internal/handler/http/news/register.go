package news

import (
	"net/http"

	newsUC "news-explorer/internal/usecase/news"
)

// Register mounts the search under prefix. GET {prefix}/news is kept as an
// alias of {prefix}/news/search for existing clients.
func Register(mux *http.ServeMux, prefix string, svc *newsUC.Service) {
	h := SearchHandler{Svc: svc}
	mux.Handle("GET "+prefix+"/news/search", h)
	mux.Handle("GET "+prefix+"/news", h)
}

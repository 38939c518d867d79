// Package news provides the public news search endpoint, a pass-through to
// the configured news provider.
package news

import (
	"net/http"

	"news-explorer/internal/handler/http/respond"
	newsUC "news-explorer/internal/usecase/news"
)

// SearchHandler forwards q, from, to and sortBy to the provider and returns
// its JSON body unchanged.
type SearchHandler struct {
	Svc *newsUC.Service
}

func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	body, err := h.Svc.Search(r.Context(), newsUC.Query{
		Q:      params.Get("q"),
		From:   params.Get("from"),
		To:     params.Get("to"),
		SortBy: params.Get("sortBy"),
	})
	if err != nil {
		respond.Failure(w, r, err)
		return
	}
	respond.Raw(w, http.StatusOK, body)
}

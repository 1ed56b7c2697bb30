package analytics

import (
	"net/http"

	"github.com/gorilla/mux"

	httputil "github.com/marble-stack/financial-planning/pkg/http"
)

type Endpoint struct {
	backend *Backend
}

func NewEndpoint(backend *Backend) *Endpoint {
	return &Endpoint{
		backend: backend,
	}
}

func (e *Endpoint) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/funnels/{name}", e.funnel).Methods("GET")
	r.HandleFunc("/counts", e.counts).Methods("GET")

	return r
}

func (e *Endpoint) funnel(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)

	name := params["name"]
	if name == "" {
		httputil.JsonError(w, http.StatusBadRequest, httputil.ErrorCodeMissingParameter, "invalid")
		return
	}

	days := httputil.GetInt(r.URL.Query(), "days", 30)

	counts, err := e.backend.FunnelCounts(name, days)
	if err != nil {
		if err == ErrUnknownFunnel {
			httputil.JsonError(w, http.StatusNotFound, httputil.ErrorCodeNotFound, "unknown funnel")
			return
		}

		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToQuery, "failed to query")
		return
	}

	err = httputil.JsonEncode(w, counts)
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToQuery, "failed to encode")
	}
}

func (e *Endpoint) counts(w http.ResponseWriter, r *http.Request) {
	days := httputil.GetInt(r.URL.Query(), "days", 7)

	counts, err := e.backend.EventCounts(days)
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToQuery, "failed to query")
		return
	}

	err = httputil.JsonEncode(w, counts)
	if err != nil {
		httputil.JsonError(w, http.StatusInternalServerError, httputil.ErrorCodeFailedToQuery, "failed to encode")
	}
}

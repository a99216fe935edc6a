// Package httpapi is the demo listing API: the feed the map consumes
// and the endpoint the form submits to.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"nestmap/internal/listing"
)

// Server serves the bootstrapped listing set and accepts submissions.
// Nothing is persisted; accepted drafts are only logged.
type Server struct {
	listings []listing.Listing
	log      zerolog.Logger
}

// New configures a Server around a fixed listing set.
func New(listings []listing.Listing, logger zerolog.Logger) *Server {
	return &Server{listings: listings, log: logger}
}

// Routes builds the HTTP routing table.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogging(s.log))
	r.HandleFunc("/data", s.handleData).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleSubmit).Methods(http.MethodPost)
	return r
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	payload, err := listing.EncodeListings(s.listings)
	if err != nil {
		s.log.Error().Err(err).Msg("encode listing feed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// Fields a submitted draft must carry. Their values are the client's
// business; server-side validation is out of scope.
var requiredDraftFields = []string{"title", "address", "price", "type", "rooms", "capacity"}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form data", http.StatusBadRequest)
		return
	}
	for _, field := range requiredDraftFields {
		if !r.PostForm.Has(field) {
			http.Error(w, "missing field "+field, http.StatusBadRequest)
			return
		}
	}

	s.log.Info().
		Str("title", r.PostForm.Get("title")).
		Str("type", r.PostForm.Get("type")).
		Str("price", r.PostForm.Get("price")).
		Msg("listing draft received")
	w.WriteHeader(http.StatusCreated)
}

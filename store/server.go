package store

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/nkall/canonlr/internal/automaton"
	"github.com/nkall/canonlr/regex"
)

// Server exposes compiled automata over HTTP: compile-and-persist, match
// against a stored automaton, fetch its DOT rendering, and delete it.
type Server struct {
	db     *DB
	secret []byte
	router chi.Router
}

// NewServer builds a Server backed by db, signing/verifying JWTs with secret.
func NewServer(db *DB, secret []byte) *Server {
	s := &Server{db: db, secret: secret}
	s.router = s.buildRouter()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(s.secret))
		r.Post("/automata", s.handleCompile)
		r.Delete("/automata/{id}", s.handleDelete)
	})

	r.Post("/automata/{id}/match", s.handleMatch)
	r.Get("/automata/{id}/dot", s.handleDOT)

	return r
}

type compileRequest struct {
	Pattern string `json:"pattern"`
}

type compileResponse struct {
	ID string `json:"id"`
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := regex.Compile(req.Pattern)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.db.Create(r.Context(), req.Pattern, m.Graph)
	if err != nil {
		log.Printf("store: compile %q: %v", req.Pattern, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, compileResponse{ID: id.String()})
}

type matchRequest struct {
	Input string `json:"input"`
}

type matchResponse struct {
	Matched bool `json:"matched"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	g, err := s.db.Get(r.Context(), id)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m := automaton.NewMachine(g)
	writeJSON(w, http.StatusOK, matchResponse{Matched: regex.Match(m, req.Input)})
}

func (s *Server) handleDOT(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	g, err := s.db.Get(r.Context(), id)
	if err != nil {
		s.writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/vnd.graphviz")
	if err := automaton.WriteDOT(w, g, nil); err != nil {
		log.Printf("store: write dot for %s: %v", id, err)
	}
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	if err := s.db.Delete(r.Context(), id); err != nil {
		s.writeLookupError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	log.Printf("store: lookup: %v", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

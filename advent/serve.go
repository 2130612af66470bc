package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/felixge/fgprof"
	"github.com/gorilla/mux"
)

const maxInputBytes = 1 << 20

type server struct {
	cfg *config
}

func serve(cfg *config, addr string) error {
	log.Printf("Listening on %s", addr)
	return http.ListenAndServe(addr, newServer(cfg))
}

func newServer(cfg *config) http.Handler {
	s := &server{cfg: cfg}
	r := mux.NewRouter()
	r.HandleFunc("/solutions", s.handleSolutions).Methods(http.MethodGet)
	r.HandleFunc("/solve/{name}", s.handleSolve).Methods(http.MethodPost)
	r.Handle("/debug/fgprof", fgprof.Handler())
	return r
}

func (s *server) handleSolutions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	for _, name := range solutionNames() {
		fmt.Fprintln(w, name)
	}
}

func (s *server) handleSolve(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	fn, ok := solutions[name]
	if !ok {
		http.Error(w, fmt.Sprintf("unknown solution %q", name), http.StatusNotFound)
		return
	}
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxInputBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	}
	answer, err := fn(s.cfg, string(b))
	if err != nil {
		var perr *ParseError
		var oerr *OverflowError
		if errors.As(err, &perr) || errors.As(err, &oerr) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Error running %s: %s", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, answer)
}

/*
Copyright 2025-2026 the Bookstore QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package stub is an in-memory replica of the bookstore demo API, used as
// a local target for the test suites. In its default lenient mode it
// reproduces the public demo's quirks: create and update accept any
// well-formed payload without validation, echo it back, do not persist it,
// and return the sentinel id 0 for created resources. Strict mode behaves
// like a conventional CRUD service: required fields are validated, ids are
// allocated, and writes persist.
package stub

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Options configures server behavior.
type Options struct {
	// Strict enables validation, id allocation and persisting writes.
	Strict bool
}

type Server struct {
	store  *Store
	strict bool
	log    *slog.Logger
}

func NewServer(store *Store, opts Options, logger *slog.Logger) *Server {
	return &Server{store: store, strict: opts.Strict, log: logger}
}

// Router builds the chi router exposing the demo API surface.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/Books", s.listBooks)
		r.Post("/Books", s.createBook)
		r.Get("/Books/{id}", s.getBook)
		r.Put("/Books/{id}", s.updateBook)
		r.Delete("/Books/{id}", s.deleteBook)

		r.Get("/Authors", s.listAuthors)
		r.Post("/Authors", s.createAuthor)
		r.Get("/Authors/{id}", s.getAuthor)
		r.Put("/Authors/{id}", s.updateAuthor)
		r.Delete("/Authors/{id}", s.deleteAuthor)
	})

	return r
}

type httpError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	e := httpError{}
	e.Error.Code = code
	e.Error.Message = msg
	writeJSON(w, status, e)
}

// idParam parses the {id} path parameter; a non-numeric id is a 400.
func idParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "id must be an integer")
		return 0, false
	}

	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "MALFORMED_BODY", "request body is not valid JSON")
		return false
	}

	return true
}

func (s *Server) listBooks(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListBooks())
}

func (s *Server) getBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	book, err := s.store.GetBook(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "book not found")
		return
	}

	writeJSON(w, http.StatusOK, book)
}

func (s *Server) createBook(w http.ResponseWriter, r *http.Request) {
	var book Book
	if !decodeBody(w, r, &book) {
		return
	}

	if s.strict {
		if book.Title == nil {
			writeError(w, http.StatusBadRequest, "VALIDATION", "title is required")
			return
		}

		writeJSON(w, http.StatusOK, s.store.CreateBook(book))

		return
	}

	// Lenient mode: echo without persisting, sentinel id.
	book.ID = 0
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) updateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var book Book
	if !decodeBody(w, r, &book) {
		return
	}

	if s.strict {
		updated, err := s.store.UpdateBook(id, book)
		if err != nil {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "book not found")
			return
		}

		writeJSON(w, http.StatusOK, updated)

		return
	}

	book.ID = id
	writeJSON(w, http.StatusOK, book)
}

func (s *Server) deleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if s.strict {
		if err := s.store.DeleteBook(id); err != nil {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "book not found")
			return
		}
	}

	s.log.Info("delete", "resource", "book", "id", id, "strict", s.strict)
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listAuthors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.store.ListAuthors())
}

func (s *Server) getAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	author, err := s.store.GetAuthor(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "author not found")
		return
	}

	writeJSON(w, http.StatusOK, author)
}

func (s *Server) createAuthor(w http.ResponseWriter, r *http.Request) {
	var author Author
	if !decodeBody(w, r, &author) {
		return
	}

	if s.strict {
		if author.FirstName == nil {
			writeError(w, http.StatusBadRequest, "VALIDATION", "firstName is required")
			return
		}

		writeJSON(w, http.StatusOK, s.store.CreateAuthor(author))

		return
	}

	author.ID = 0
	writeJSON(w, http.StatusOK, author)
}

func (s *Server) updateAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var author Author
	if !decodeBody(w, r, &author) {
		return
	}

	if s.strict {
		updated, err := s.store.UpdateAuthor(id, author)
		if err != nil {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "author not found")
			return
		}

		writeJSON(w, http.StatusOK, updated)

		return
	}

	author.ID = id
	writeJSON(w, http.StatusOK, author)
}

func (s *Server) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if s.strict {
		if err := s.store.DeleteAuthor(id); err != nil {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "author not found")
			return
		}
	}

	s.log.Info("delete", "resource", "author", "id", id, "strict", s.strict)
	w.WriteHeader(http.StatusOK)
}

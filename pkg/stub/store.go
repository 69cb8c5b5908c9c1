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

package stub

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("not found")

// Store is the in-memory dataset behind the stub. Reads happen on every
// request, writes only in strict mode, so the lock is a RWMutex.
type Store struct {
	mu           sync.RWMutex
	books        map[int]Book
	authors      map[int]Author
	nextBookID   int
	nextAuthorID int
}

// NewStore returns a store seeded with the given number of books and
// authors, ids 1..n, mimicking the demo service's generated dataset.
func NewStore(books, authors int) *Store {
	s := &Store{
		books:        make(map[int]Book, books),
		authors:      make(map[int]Author, authors),
		nextBookID:   books + 1,
		nextAuthorID: authors + 1,
	}

	for id := 1; id <= books; id++ {
		title := fmt.Sprintf("Book %d", id)
		description := fmt.Sprintf("Lorem lorem lorem. Book %d.", id)
		excerpt := fmt.Sprintf("Excerpt of book %d.", id)
		publishDate := "2020-01-01T00:00:00"

		s.books[id] = Book{
			ID:          id,
			Title:       &title,
			Description: &description,
			PageCount:   id * 100,
			Excerpt:     &excerpt,
			PublishDate: &publishDate,
		}
	}

	for id := 1; id <= authors; id++ {
		firstName := fmt.Sprintf("First Name %d", id)
		lastName := fmt.Sprintf("Last Name %d", id)

		s.authors[id] = Author{
			ID:        id,
			FirstName: &firstName,
			LastName:  &lastName,
		}
	}

	return s
}

// ListBooks returns all books ordered by id.
func (s *Store) ListBooks() []Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, b)
	}

	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })

	return books
}

// GetBook returns a book by id.
func (s *Store) GetBook(id int) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}

	return b, nil
}

// CreateBook allocates a fresh id and persists the book.
func (s *Store) CreateBook(b Book) Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = s.nextBookID
	s.nextBookID++
	s.books[b.ID] = b

	return b
}

// UpdateBook replaces a book by id.
func (s *Store) UpdateBook(id int, b Book) (Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return Book{}, ErrNotFound
	}

	b.ID = id
	s.books[id] = b

	return b, nil
}

// DeleteBook removes a book by id.
func (s *Store) DeleteBook(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.books[id]; !ok {
		return ErrNotFound
	}

	delete(s.books, id)

	return nil
}

// ListAuthors returns all authors ordered by id.
func (s *Store) ListAuthors() []Author {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := make([]Author, 0, len(s.authors))
	for _, a := range s.authors {
		authors = append(authors, a)
	}

	sort.Slice(authors, func(i, j int) bool { return authors[i].ID < authors[j].ID })

	return authors
}

// GetAuthor returns an author by id.
func (s *Store) GetAuthor(id int) (Author, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.authors[id]
	if !ok {
		return Author{}, ErrNotFound
	}

	return a, nil
}

// CreateAuthor allocates a fresh id and persists the author.
func (s *Store) CreateAuthor(a Author) Author {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextAuthorID
	s.nextAuthorID++
	s.authors[a.ID] = a

	return a
}

// UpdateAuthor replaces an author by id.
func (s *Store) UpdateAuthor(id int, a Author) (Author, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[id]; !ok {
		return Author{}, ErrNotFound
	}

	a.ID = id
	s.authors[id] = a

	return a, nil
}

// DeleteAuthor removes an author by id.
func (s *Store) DeleteAuthor(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[id]; !ok {
		return ErrNotFound
	}

	delete(s.authors, id)

	return nil
}

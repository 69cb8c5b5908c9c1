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

package api

import (
	"fmt"
	"net/url"
	"strings"
)

// ExpandPath substitutes {name}-style placeholders in a path template with
// path-escaped parameter values. Unknown placeholders are left intact so a
// broken template shows up verbatim in the request log.
func ExpandPath(template string, params map[string]string) string {
	expanded := template

	for name, value := range params {
		expanded = strings.ReplaceAll(expanded, "{"+name+"}", url.PathEscape(value))
	}

	return expanded
}

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Books resource endpoints.
func (e *Endpoints) ListBooks() string {
	return "/api/v1/Books"
}

func (e *Endpoints) CreateBook() string {
	return "/api/v1/Books"
}

func (e *Endpoints) BookByID(id int) string {
	return ExpandPath("/api/v1/Books/{id}", map[string]string{"id": fmt.Sprintf("%d", id)})
}

// Authors resource endpoints.
func (e *Endpoints) ListAuthors() string {
	return "/api/v1/Authors"
}

func (e *Endpoints) CreateAuthor() string {
	return "/api/v1/Authors"
}

func (e *Endpoints) AuthorByID(id int) string {
	return ExpandPath("/api/v1/Authors/{id}", map[string]string{"id": fmt.Sprintf("%d", id)})
}

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
	"encoding/json"
)

// BookPayloadBuilder builds book payloads for testing.
type BookPayloadBuilder struct {
	payload map[string]interface{}
}

// NewBookPayload creates a book payload builder with the canonical valid
// book used by the lifecycle scenarios.
func NewBookPayload() *BookPayloadBuilder {
	return &BookPayloadBuilder{
		payload: map[string]interface{}{
			"title":       "Automated Test Book",
			"description": "Book created by API automation tests",
			"pageCount":   123,
			"excerpt":     "Testing is fun!",
			"publishDate": "2020-01-01T00:00:00",
		},
	}
}

// WithID sets the id field, required for full-replacement updates.
func (b *BookPayloadBuilder) WithID(id int) *BookPayloadBuilder {
	b.payload["id"] = id
	return b
}

// WithTitle sets the title.
func (b *BookPayloadBuilder) WithTitle(title string) *BookPayloadBuilder {
	b.payload["title"] = title
	return b
}

// WithDescription sets the description.
func (b *BookPayloadBuilder) WithDescription(desc string) *BookPayloadBuilder {
	b.payload["description"] = desc
	return b
}

// WithPageCount sets the page count.
func (b *BookPayloadBuilder) WithPageCount(count int) *BookPayloadBuilder {
	b.payload["pageCount"] = count
	return b
}

// WithExcerpt sets the excerpt.
func (b *BookPayloadBuilder) WithExcerpt(excerpt string) *BookPayloadBuilder {
	b.payload["excerpt"] = excerpt
	return b
}

// WithPublishDate sets the publish date as a raw string so syntactically
// invalid dates survive to the wire.
func (b *BookPayloadBuilder) WithPublishDate(date string) *BookPayloadBuilder {
	b.payload["publishDate"] = date
	return b
}

// Without removes a field entirely, for missing-required-field scenarios.
func (b *BookPayloadBuilder) Without(field string) *BookPayloadBuilder {
	delete(b.payload, field)
	return b
}

// WithField sets an arbitrary field, for extra-field scenarios.
func (b *BookPayloadBuilder) WithField(name string, value interface{}) *BookPayloadBuilder {
	b.payload[name] = value
	return b
}

// Build returns the payload as JSON text.
func (b *BookPayloadBuilder) Build() string {
	return marshalPayload(b.payload)
}

// AuthorPayloadBuilder builds author payloads for testing.
type AuthorPayloadBuilder struct {
	payload map[string]interface{}
}

// NewAuthorPayload creates an author payload builder with a valid default
// author.
func NewAuthorPayload() *AuthorPayloadBuilder {
	return &AuthorPayloadBuilder{
		payload: map[string]interface{}{
			"firstName": "Test",
			"lastName":  "Author",
		},
	}
}

// WithID sets the id field, required for full-replacement updates.
func (b *AuthorPayloadBuilder) WithID(id int) *AuthorPayloadBuilder {
	b.payload["id"] = id
	return b
}

// WithFirstName sets the first name.
func (b *AuthorPayloadBuilder) WithFirstName(name string) *AuthorPayloadBuilder {
	b.payload["firstName"] = name
	return b
}

// WithLastName sets the last name.
func (b *AuthorPayloadBuilder) WithLastName(name string) *AuthorPayloadBuilder {
	b.payload["lastName"] = name
	return b
}

// WithNullNames sets both name fields to explicit JSON nulls.
func (b *AuthorPayloadBuilder) WithNullNames() *AuthorPayloadBuilder {
	b.payload["firstName"] = nil
	b.payload["lastName"] = nil

	return b
}

// Without removes a field entirely, for missing-required-field scenarios.
func (b *AuthorPayloadBuilder) Without(field string) *AuthorPayloadBuilder {
	delete(b.payload, field)
	return b
}

// WithField sets an arbitrary field, for extra-field scenarios.
func (b *AuthorPayloadBuilder) WithField(name string, value interface{}) *AuthorPayloadBuilder {
	b.payload[name] = value
	return b
}

// Build returns the payload as JSON text.
func (b *AuthorPayloadBuilder) Build() string {
	return marshalPayload(b.payload)
}

func marshalPayload(payload map[string]interface{}) string {
	text, err := json.Marshal(payload)
	if err != nil {
		// Payloads are maps of primitives; marshaling cannot fail.
		panic(err)
	}

	return string(text)
}

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

// Book mirrors the demo API's book resource. String fields are pointers so
// a field missing from a create payload echoes back as JSON null, the way
// the demo service behaves.
type Book struct {
	ID          int     `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PageCount   int     `json:"pageCount"`
	Excerpt     *string `json:"excerpt"`
	PublishDate *string `json:"publishDate"`
}

// Author mirrors the demo API's author resource.
type Author struct {
	ID        int     `json:"id"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

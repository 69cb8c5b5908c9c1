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

// Package api provides integration test utilities for the bookstore demo
// API.
//
// # Separate Client Implementation
//
// This package keeps its own thin HTTP client (APIClient) instead of a
// generated or third-party API client. The suite's job is to observe the
// wire behavior of the service, including how it reacts to payloads a
// well-behaved client could never produce:
//
//   - Request bodies are literal JSON text, so the malformed-JSON
//     scenarios reach the service byte-for-byte.
//   - Responses expose the raw status code, content type and body; all
//     expectations live in the suites, not the client.
//   - W3C trace context propagation and GinkgoWriter logging make failed
//     exchanges searchable in service logs.
//
// # Fixture State
//
// Each resource group threads the id captured by its create scenario into
// the dependent read/update/delete scenarios through a LifecycleState
// owned by that group's ordered container. The public demo service echoes
// the sentinel id 0 instead of allocating ids; TargetID documents the
// policy for tolerating that.
package api

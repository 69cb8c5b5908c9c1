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

//nolint:revive // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
)

// SentinelID is the id a non-persisting test double echoes in place of a
// real allocated id.
const SentinelID = 0

// LifecycleState carries the created-resource id across the ordered
// lifecycle scenarios of one resource group. Each group owns its own
// instance, so groups never leak ids into each other and may run in
// parallel.
type LifecycleState struct {
	createdID int
	recorded  bool
}

// NewLifecycleState returns an empty state for one resource group.
func NewLifecycleState() *LifecycleState {
	return &LifecycleState{}
}

// Record stores the id extracted from the create scenario's response.
func (s *LifecycleState) Record(id int) {
	s.createdID = id
	s.recorded = true
}

// CreatedID returns the recorded id and whether create ever recorded one.
func (s *LifecycleState) CreatedID() (int, bool) {
	return s.createdID, s.recorded
}

// TargetID decides which id the read/update/delete scenarios act on.
//
// Under the lenient policy a sentinel id means the service does not
// allocate real ids, so the configured fallback id substitutes for it and
// the dependent scenarios still exercise a real resource. Under the strict
// policy only a positive id is usable.
func (s *LifecycleState) TargetID(config *TestConfig) (int, bool) {
	if !s.recorded {
		return 0, false
	}

	if config.StrictValidation {
		if s.createdID <= SentinelID {
			return 0, false
		}

		return s.createdID, true
	}

	if s.createdID < SentinelID {
		return 0, false
	}

	if s.createdID == SentinelID {
		return config.FallbackID, true
	}

	return s.createdID, true
}

// RequireTargetID returns the target id or skips the calling scenario when
// no usable id exists. A missing precondition is a skip, never a failure.
func (s *LifecycleState) RequireTargetID(config *TestConfig) int {
	id, ok := s.TargetID(config)
	if !ok {
		Skip(fmt.Sprintf("no usable resource id recorded by the create scenario (recorded=%t, id=%d)", s.recorded, s.createdID))
	}

	return id
}

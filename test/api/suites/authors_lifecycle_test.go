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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bookstore-qa/bookstore-api-tests/test/api"
)

var _ = Describe("Authors Lifecycle", Ordered, func() {
	var state *api.LifecycleState

	BeforeAll(func() {
		state = api.NewLifecycleState()
	})

	It("should list all authors", func() {
		resp, err := client.Get(ctx, endpoints.ListAuthors())
		Expect(err).NotTo(HaveOccurred())

		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.IsJSON()).To(BeTrue(), "expected a JSON content type, got %q", resp.ContentType)
	})

	It("should create an author and capture its id", func() {
		resp, err := client.Post(ctx, endpoints.CreateAuthor(), api.NewAuthorPayload().Build())
		Expect(err).NotTo(HaveOccurred())

		Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusCreated))

		id, err := resp.IDField()
		Expect(err).NotTo(HaveOccurred())

		if config.StrictValidation {
			Expect(id).To(BeNumerically(">", api.SentinelID), "a strict service must allocate a real id")
		} else {
			Expect(id).To(BeNumerically(">=", api.SentinelID))
		}

		state.Record(id)
	})

	It("should read the created author by id", func() {
		targetID := state.RequireTargetID(config)

		resp, err := client.Get(ctx, endpoints.AuthorByID(targetID))
		Expect(err).NotTo(HaveOccurred())

		Expect(resp.StatusCode).To(Equal(http.StatusOK))

		body, err := resp.JSON()
		Expect(err).NotTo(HaveOccurred())
		Expect(body["id"]).To(BeEquivalentTo(targetID))
	})

	It("should update the author with a full replacement", func() {
		targetID := state.RequireTargetID(config)

		payload := api.NewAuthorPayload().
			WithID(targetID).
			WithFirstName("Updated").
			WithLastName("Author").
			Build()

		resp, err := client.Put(ctx, endpoints.AuthorByID(targetID), payload)
		Expect(err).NotTo(HaveOccurred())

		Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusNoContent))
	})

	It("should delete the author", func() {
		targetID := state.RequireTargetID(config)

		resp, err := client.Delete(ctx, endpoints.AuthorByID(targetID))
		Expect(err).NotTo(HaveOccurred())

		Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusNoContent))
	})
})

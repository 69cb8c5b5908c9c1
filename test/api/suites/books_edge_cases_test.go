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

// nonExistentID is far beyond any seeded resource.
const nonExistentID = 9999999

var _ = Describe("Books Edge Cases", func() {
	Context("When reading with an invalid id", func() {
		It("should return a client error for a non-existent book", func() {
			resp, err := client.Get(ctx, endpoints.BookByID(nonExistentID))
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusNotFound))
		})
	})

	Context("When creating with an invalid payload", func() {
		It("should apply the deployment policy for a missing title", func() {
			payload := api.NewBookPayload().
				Without("title").
				WithDescription("Missing title field").
				WithPageCount(100).
				WithExcerpt("No title").
				Build()

			resp, err := client.Post(ctx, endpoints.CreateBook(), payload)
			Expect(err).NotTo(HaveOccurred())

			if config.StrictValidation {
				Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusUnprocessableEntity, http.StatusNotFound))
				return
			}

			// Lenient services accept the payload and echo the missing
			// field back as null.
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body, err := resp.JSON()
			Expect(err).NotTo(HaveOccurred())
			Expect(body["title"]).To(BeNil())
			Expect(body["description"]).To(Equal("Missing title field"))
		})

		It("should accept a negative page count as-is", func() {
			payload := api.NewBookPayload().
				WithTitle("Negative Pages Book").
				WithDescription("A book with negative pages").
				WithPageCount(-50).
				WithExcerpt("Impossible book").
				Build()

			resp, err := client.Post(ctx, endpoints.CreateBook(), payload)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body, err := resp.JSON()
			Expect(err).NotTo(HaveOccurred())
			Expect(body["pageCount"]).To(BeEquivalentTo(-50))
		})

		It("should reject malformed JSON with a client or server error", func() {
			malformed := `{"title": "Test Book", "description": "Missing closing brace"`

			resp, err := client.Post(ctx, endpoints.CreateBook(), malformed)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(BeElementOf(http.StatusBadRequest, http.StatusInternalServerError))
		})
	})

	Context("When creating with unusual dates", func() {
		It("should tolerate a syntactically invalid publish date", func() {
			payload := api.NewBookPayload().
				WithTitle("Invalid Date Book").
				WithDescription("A book with invalid date").
				WithPageCount(100).
				WithExcerpt("Bad date").
				WithPublishDate("invalid-date-format").
				Build()

			resp, err := client.Post(ctx, endpoints.CreateBook(), payload)
			Expect(err).NotTo(HaveOccurred())

			// The service may bind the date leniently or reject it.
			Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusBadRequest))
		})

		It("should echo a far-future publish date exactly", func() {
			payload := api.NewBookPayload().
				WithTitle("Future Book").
				WithDescription("A book from the future").
				WithPageCount(300).
				WithExcerpt("Time travel").
				WithPublishDate("2099-12-31T23:59:59").
				Build()

			resp, err := client.Post(ctx, endpoints.CreateBook(), payload)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			body, err := resp.JSON()
			Expect(err).NotTo(HaveOccurred())
			Expect(body["publishDate"]).To(Equal("2099-12-31T23:59:59"))
		})
	})

	Context("When operating on a non-existent book", func() {
		It("should tolerate updating a non-existent book", func() {
			payload := api.NewBookPayload().
				WithID(nonExistentID).
				WithTitle("Non-existent Book").
				WithDescription("This book doesn't exist").
				WithPageCount(100).
				WithExcerpt("Not found").
				Build()

			resp, err := client.Put(ctx, endpoints.BookByID(nonExistentID), payload)
			Expect(err).NotTo(HaveOccurred())

			Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusNoContent, http.StatusNotFound))
		})

		It("should handle repeated delete operations idempotently", func() {
			for i := 0; i < 2; i++ {
				resp, err := client.Delete(ctx, endpoints.BookByID(nonExistentID))
				Expect(err).NotTo(HaveOccurred())

				Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusNoContent, http.StatusNotFound))
			}
		})
	})
})

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

package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/bookstore-qa/bookstore-api-tests/pkg/stub"
)

func main() {
	var (
		addr    string
		books   int
		authors int
		strict  bool
	)

	pflag.StringVar(&addr, "addr", ":3000", "listen address")
	pflag.IntVar(&books, "books", 200, "number of seeded books")
	pflag.IntVar(&authors, "authors", 590, "number of seeded authors")
	pflag.BoolVar(&strict, "strict", false, "validate payloads, allocate ids and persist writes")
	pflag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	server := stub.NewServer(stub.NewStore(books, authors), stub.Options{Strict: strict}, logger)

	logger.Info("bookstore stub listening", "addr", addr, "books", books, "authors", authors, "strict", strict)

	if err := http.ListenAndServe(addr, server.Router()); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

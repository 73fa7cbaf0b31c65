/*
Copyright 2026 the PetFriends E2E Authors.

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

	"github.com/petfriends-qa/petfriends-e2e/pkg/petfriends"
)

var _ = Describe("Security and Authentication", func() {
	Context("When requesting an auth key", func() {
		Describe("Given valid credentials", func() {
			It("should return a non-empty key", func() {
				result, err := client.GetAPIKey(ctx, config.ValidEmail, config.ValidPassword)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusOK), "Should successfully obtain a key (HTTP 200)")
				Expect(result.Decoded).To(BeTrue(), "Key response should be JSON")
				Expect(result.Value.Key).NotTo(BeEmpty(), "Response should contain a key")
			})
		})

		Describe("Given invalid credentials", func() {
			DescribeTable("should refuse to issue a key",
				func(email, password func() string) {
					result, err := client.GetAPIKey(ctx, email(), password())
					Expect(err).NotTo(HaveOccurred(), "A refusal is a response, not a transport failure")
					Expect(result.StatusCode).To(Equal(http.StatusForbidden), "Expected HTTP 403, got body: %s", result.Message())
					Expect(result.Value.Key).To(BeEmpty())

					GinkgoWriter.Printf("Refusal body: %s\n", result.Message())
				},
				Entry("with an invalid password",
					func() string { return config.ValidEmail },
					func() string { return config.InvalidPassword }),
				Entry("with an unregistered email",
					func() string { return config.InvalidEmail },
					func() string { return config.ValidPassword }),
				Entry("with empty email and password",
					func() string { return "" },
					func() string { return "" }),
			)
		})
	})

	Context("When calling the API with a bad auth key", func() {
		Describe("Given a key that was never issued", func() {
			It("should reject listing pets", func() {
				result, err := client.ListPets(ctx, "not-a-real-key", petfriends.AllPets)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusForbidden))
			})

			It("should reject creating a pet", func() {
				result, err := client.AddNewPetWithoutPhoto(ctx, "not-a-real-key", petfriends.PetFields{Name: "KorG", AnimalType: "corgi", Age: "3"})
				Expect(err).NotTo(HaveOccurred())
				Expect(result.StatusCode).To(Equal(http.StatusForbidden))
			})
		})
	})
})

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
	"github.com/petfriends-qa/petfriends-e2e/test/api"
)

var _ = Describe("Pet Listing", func() {
	var (
		authKey string
		pet     petfriends.Pet
	)

	BeforeEach(func() {
		authKey = api.AcquireAuthKey(client, ctx, config)
		pet = api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
	})

	Context("When listing all pets", func() {
		It("should return a non-empty list", func() {
			result, err := client.ListPets(ctx, authKey, petfriends.AllPets)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK))
			Expect(result.Decoded).To(BeTrue(), "Listing should be JSON")
			Expect(result.Value.Pets).NotTo(BeEmpty(), "Listing should contain at least one pet")

			GinkgoWriter.Printf("Listed %d pets\n", len(result.Value.Pets))
		})

		It("should give every pet an id", func() {
			for _, listed := range api.ListPets(client, ctx, authKey, petfriends.AllPets).Pets {
				Expect(listed.ID).NotTo(BeEmpty())
			}
		})
	})

	Context("When listing my pets", func() {
		It("should include a pet I created", func() {
			ids := api.ListPetIDs(client, ctx, authKey, petfriends.MyPets)
			api.VerifyPetPresence(ids, pet.ID)
		})

		It("should echo back the fields I created it with", func() {
			pets := api.ListPets(client, ctx, authKey, petfriends.MyPets)

			listed, ok := pets.Find(pet.ID)
			Expect(ok).To(BeTrue(), "Created pet should be listed")
			Expect(listed.Name).To(Equal(pet.Name))
			Expect(listed.AnimalType).To(Equal(pet.AnimalType))
			Expect(listed.Age).To(Equal(pet.Age))
		})

		It("should return the same pets on repeated calls", func() {
			first := api.ListPetIDs(client, ctx, authKey, petfriends.MyPets)
			second := api.ListPetIDs(client, ctx, authKey, petfriends.MyPets)

			Expect(api.SameIDs(first, second)).To(BeTrue(), "Listing should be stable without intervening writes")
		})
	})
})

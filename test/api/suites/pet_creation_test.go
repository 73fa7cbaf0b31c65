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

var _ = Describe("Pet Creation", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.AcquireAuthKey(client, ctx, config)
	})

	Context("When creating a pet with a photo", func() {
		It("should echo the pet back with its photo", func() {
			fields := petfriends.PetFields{Name: "KorG", AnimalType: "corgi", Age: "3"}

			result, err := client.AddNewPet(ctx, authKey, fields, api.ImagePath(config, api.RelaxImage))
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK), "Creating pet failed: %s", result.Message())

			pet := result.Value
			DeferCleanup(api.DeletePetQuietly, client, ctx, authKey, pet.ID)

			Expect(pet.ID).NotTo(BeEmpty())
			Expect(pet.Name).To(Equal("KorG"))
			Expect(pet.AnimalType).To(Equal("corgi"))
			Expect(pet.Age).To(Equal(petfriends.LooseString("3")))
			Expect(pet.PetPhoto).NotTo(Equal(""), "Photo should be stored")

			api.EventuallyOwnsPet(client, ctx, config, authKey, pet.ID)
		})

		It("should fail locally when the photo does not exist", func() {
			fields := api.NewPetPayload().Build()

			result, err := client.AddNewPet(ctx, authKey, fields, api.ImagePath(config, "missing.jpg"))
			Expect(err).To(MatchError(petfriends.ErrPhoto))
			Expect(result).To(BeNil(), "No request should be sent")
		})
	})

	Context("When creating a pet without a photo", func() {
		It("should echo the pet back with an empty photo", func() {
			fields := petfriends.PetFields{Name: "КорГ без Fото", AnimalType: "corgi", Age: "1"}

			pet := api.CreatePetWithCleanup(client, ctx, authKey, fields)

			Expect(pet.Name).To(Equal("КорГ без Fото"))
			Expect(pet.AnimalType).To(Equal("corgi"))
			Expect(pet.Age).To(Equal(petfriends.LooseString("1")))
			Expect(pet.PetPhoto).To(Equal(""))

			api.EventuallyOwnsPet(client, ctx, config, authKey, pet.ID)
		})

		It("should give each pet its own id", func() {
			first := api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
			second := api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())

			Expect(first.ID).NotTo(Equal(second.ID))
		})
	})
})

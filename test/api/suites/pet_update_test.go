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

var _ = Describe("Pet Update", func() {
	var (
		authKey string
		target  petfriends.Pet
		other   petfriends.Pet
	)

	BeforeEach(func() {
		authKey = api.AcquireAuthKey(client, ctx, config)
		target = api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
		other = api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
	})

	Context("When updating one of my pets", func() {
		It("should replace its fields and keep its id", func() {
			fields := petfriends.PetFields{Name: "Корж", AnimalType: "Вельш Корги Пемброк", Age: "2"}

			result, err := client.UpdatePetInfo(ctx, authKey, target.ID, fields)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK), "Updating pet failed: %s", result.Message())

			updated := result.Value
			Expect(updated.ID).To(Equal(target.ID))
			Expect(updated.Name).To(Equal("Корж"))
			Expect(updated.AnimalType).To(Equal("Вельш Корги Пемброк"))
			Expect(updated.Age).To(Equal(petfriends.LooseString("2")))
		})

		It("should be reflected in my listing", func() {
			fields := api.NewPetPayload().WithName("Корж").Build()

			result, err := client.UpdatePetInfo(ctx, authKey, target.ID, fields)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK))

			pets := api.ListPets(client, ctx, authKey, petfriends.MyPets)

			listed, ok := pets.Find(target.ID)
			Expect(ok).To(BeTrue())
			Expect(listed.Name).To(Equal("Корж"))
		})

		It("should leave my other pets alone", func() {
			result, err := client.UpdatePetInfo(ctx, authKey, target.ID, api.NewPetPayload().Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK))

			pets := api.ListPets(client, ctx, authKey, petfriends.MyPets)

			untouched, ok := pets.Find(other.ID)
			Expect(ok).To(BeTrue())
			Expect(untouched.Name).To(Equal(other.Name))
			Expect(untouched.AnimalType).To(Equal(other.AnimalType))
			Expect(untouched.Age).To(Equal(other.Age))
		})
	})

	Context("When updating a pet that does not exist", func() {
		It("should not succeed", func() {
			result, err := client.UpdatePetInfo(ctx, authKey, api.GenerateTestID(), api.NewPetPayload().Build())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).NotTo(Equal(http.StatusOK))
		})
	})
})

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

var _ = Describe("Pet Deletion", func() {
	var authKey string

	BeforeEach(func() {
		authKey = api.AcquireAuthKey(client, ctx, config)
	})

	Context("When deleting one of my pets", func() {
		It("should remove it from my listing", func() {
			pet := api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
			api.EventuallyOwnsPet(client, ctx, config, authKey, pet.ID)

			result, err := client.DeletePet(ctx, authKey, pet.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK), "Deleting pet failed: %s", result.Message())

			api.EventuallyDisownsPet(client, ctx, config, authKey, pet.ID)
		})

		It("should delete a freshly created KorG", func() {
			fields := petfriends.PetFields{Name: "KorG", AnimalType: "corgi", Age: "3"}
			pet := api.CreatePetWithPhotoWithCleanup(client, ctx, authKey, fields, api.ImagePath(config, api.RelaxImage))

			result, err := client.DeletePet(ctx, authKey, pet.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK))

			ids := api.ListPetIDs(client, ctx, authKey, petfriends.MyPets)
			api.VerifyPetAbsence(ids, pet.ID)
		})

		It("should leave my other pets alone", func() {
			doomed := api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())
			kept := api.CreatePetWithCleanup(client, ctx, authKey, api.NewPetPayload().Build())

			result, err := client.DeletePet(ctx, authKey, doomed.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.StatusCode).To(Equal(http.StatusOK))

			ids := api.ListPetIDs(client, ctx, authKey, petfriends.MyPets)
			api.VerifyPetAbsence(ids, doomed.ID)
			api.VerifyPetPresence(ids, kept.ID)
		})
	})
})

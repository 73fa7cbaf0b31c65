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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/petfriends-qa/petfriends-e2e/pkg/petfriends"
)

// PetPayloadBuilder builds pet fields for testing.
type PetPayloadBuilder struct {
	fields petfriends.PetFields
}

// NewPetPayload creates a new pet payload builder with a unique name.
func NewPetPayload() *PetPayloadBuilder {
	return &PetPayloadBuilder{
		fields: petfriends.PetFields{
			Name:       generateRandomName("korg"),
			AnimalType: "corgi",
			Age:        "3",
		},
	}
}

// WithName sets the pet name.
func (b *PetPayloadBuilder) WithName(name string) *PetPayloadBuilder {
	b.fields.Name = name
	return b
}

// WithAnimalType sets the breed.
func (b *PetPayloadBuilder) WithAnimalType(animalType string) *PetPayloadBuilder {
	b.fields.AnimalType = animalType
	return b
}

// WithAge sets the age, any string is passed through untouched.
func (b *PetPayloadBuilder) WithAge(age string) *PetPayloadBuilder {
	b.fields.Age = age
	return b
}

// Build returns the completed pet fields.
func (b *PetPayloadBuilder) Build() petfriends.PetFields {
	return b.fields
}

// AcquireAuthKey fetches a fresh auth key for the valid account.
func AcquireAuthKey(client petfriends.PetFriends, ctx context.Context, config *TestConfig) string {
	result, err := client.GetAPIKey(ctx, config.ValidEmail, config.ValidPassword)
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), "auth key request failed: %s", result.Message())
	Expect(result.Value.Key).NotTo(BeEmpty(), "auth key response should carry a key")

	return result.Value.Key
}

// CreatePetWithCleanup creates a pet without a photo and schedules its deletion.
func CreatePetWithCleanup(client petfriends.PetFriends, ctx context.Context, authKey string, fields petfriends.PetFields) petfriends.Pet {
	result, err := client.AddNewPetWithoutPhoto(ctx, authKey, fields)
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), "creating pet failed: %s", result.Message())
	Expect(result.Value.ID).NotTo(BeEmpty(), "created pet should have an ID")

	return scheduleCleanup(client, authKey, result.Value)
}

// CreatePetWithPhotoWithCleanup creates a pet with a photo and schedules its deletion.
func CreatePetWithPhotoWithCleanup(client petfriends.PetFriends, ctx context.Context, authKey string, fields petfriends.PetFields, photoPath string) petfriends.Pet {
	result, err := client.AddNewPet(ctx, authKey, fields, photoPath)
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), "creating pet with photo failed: %s", result.Message())
	Expect(result.Value.ID).NotTo(BeEmpty(), "created pet should have an ID")

	return scheduleCleanup(client, authKey, result.Value)
}

// scheduleCleanup deletes the pet whether the spec passes or fails.
func scheduleCleanup(client petfriends.PetFriends, authKey string, pet petfriends.Pet) petfriends.Pet {
	GinkgoWriter.Printf("Created pet with ID: %s\n", pet.ID)

	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up pet: %s\n", pet.ID)
		DeletePetQuietly(client, context.Background(), authKey, pet.ID)
	})

	return pet
}

// DeletePetQuietly deletes a pet, logging rather than failing on problems.
// Deleting a pet the spec already removed is expected to be harmless.
func DeletePetQuietly(client petfriends.PetFriends, ctx context.Context, authKey, petID string) {
	result, err := client.DeletePet(ctx, authKey, petID)
	if err != nil {
		GinkgoWriter.Printf("Warning: Failed to delete pet %s: %v\n", petID, err)
		return
	}

	if result.StatusCode != http.StatusOK {
		GinkgoWriter.Printf("Warning: Deleting pet %s returned status %d: %s\n", petID, result.StatusCode, result.Message())
		return
	}

	GinkgoWriter.Printf("Successfully deleted pet: %s\n", petID)
}

// ListPets lists pets and asserts the request succeeded.
func ListPets(client petfriends.PetFriends, ctx context.Context, authKey string, filter petfriends.PetFilter) petfriends.PetList {
	result, err := client.ListPets(ctx, authKey, filter)
	Expect(err).NotTo(HaveOccurred())
	Expect(result.StatusCode).To(Equal(http.StatusOK), "listing pets failed: %s", result.Message())

	return result.Value
}

// ListPetIDs returns the ids of listed pets.
func ListPetIDs(client petfriends.PetFriends, ctx context.Context, authKey string, filter petfriends.PetFilter) []string {
	list := ListPets(client, ctx, authKey, filter)

	return list.IDs()
}

// VerifyPetPresence verifies that a pet is present in the list.
func VerifyPetPresence(ids []string, petID string) {
	Expect(ids).To(ContainElement(petID), "Expected pet ID %s to be present in the list", petID)
}

// VerifyPetAbsence verifies that a pet is absent from the list.
func VerifyPetAbsence(ids []string, petID string) {
	Expect(ids).NotTo(ContainElement(petID), "Expected pet ID %s to be absent from the list", petID)
}

// EventuallyOwnsPet waits for a created pet to show up in the caller's pets.
func EventuallyOwnsPet(client petfriends.PetFriends, ctx context.Context, config *TestConfig, authKey, petID string) {
	Eventually(func() []string {
		result, err := client.ListPets(ctx, authKey, petfriends.MyPets)
		if err != nil || result.StatusCode != http.StatusOK {
			return nil
		}

		return result.Value.IDs()
	}).WithTimeout(config.EventualTimeout).WithPolling(config.PollInterval).Should(ContainElement(petID))
}

// EventuallyDisownsPet waits for a deleted pet to disappear from the caller's pets.
func EventuallyDisownsPet(client petfriends.PetFriends, ctx context.Context, config *TestConfig, authKey, petID string) {
	Eventually(func() ([]string, error) {
		result, err := client.ListPets(ctx, authKey, petfriends.MyPets)
		if err != nil {
			return nil, err
		}

		return result.Value.IDs(), nil
	}).WithTimeout(config.EventualTimeout).WithPolling(config.PollInterval).ShouldNot(ContainElement(petID))
}

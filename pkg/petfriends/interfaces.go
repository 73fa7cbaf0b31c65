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

//go:generate mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

package petfriends

import (
	"context"
)

// PetFriends is the set of remote operations exercised by the suite.
// Implementations return the response status untouched; only transport
// and decode problems are reported as errors.
type PetFriends interface {
	// GetAPIKey exchanges credentials for an auth key.
	GetAPIKey(ctx context.Context, email, password string) (*Result[AuthKey], error)

	// ListPets lists all pets, or only the caller's with MyPets.
	ListPets(ctx context.Context, authKey string, filter PetFilter) (*Result[PetList], error)

	// AddNewPet creates a pet and uploads its photo in one request.
	AddNewPet(ctx context.Context, authKey string, fields PetFields, photoPath string) (*Result[Pet], error)

	// AddNewPetWithoutPhoto creates a pet with no photo.
	AddNewPetWithoutPhoto(ctx context.Context, authKey string, fields PetFields) (*Result[Pet], error)

	// UpdatePetInfo replaces the fields of a pet owned by the caller.
	UpdatePetInfo(ctx context.Context, authKey, petID string, fields PetFields) (*Result[Pet], error)

	// DeletePet removes a pet owned by the caller.
	DeletePet(ctx context.Context, authKey, petID string) (*Result[Empty], error)

	// AddPhotoOfPet attaches or replaces the photo of a pet.
	AddPhotoOfPet(ctx context.Context, authKey, petID, photoPath string) (*Result[Pet], error)
}

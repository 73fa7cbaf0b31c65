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

package petfriends

//go:generate go tool oapi-codegen -config types.cfg.yaml openapi.yaml

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PetFilter scopes a pet listing.
type PetFilter string

const (
	// AllPets lists every pet known to the service.
	AllPets PetFilter = ""
	// MyPets lists only pets owned by the authenticated account.
	MyPets PetFilter = "my_pets"
)

// LooseString decodes a JSON string, number or null into a string.
// The service is inconsistent about the type of some fields (notably age)
// depending on what was submitted.  Such fields are marked with
// x-go-type: LooseString in openapi.yaml.
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}

		*s = LooseString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", string(data))
		}

		*s = LooseString(n.String())
	}

	return nil
}

// IDs returns the ids of all listed pets in order.
func (l *PetList) IDs() []string {
	ids := make([]string, len(l.Pets))

	for i := range l.Pets {
		ids[i] = l.Pets[i].ID
	}

	return ids
}

// Find returns the pet with the given id, if listed.
func (l *PetList) Find(id string) (*Pet, bool) {
	for i := range l.Pets {
		if l.Pets[i].ID == id {
			return &l.Pets[i], true
		}
	}

	return nil, false
}

// PetFields are the user editable fields of a pet.  Age is deliberately
// a string so that malformed values can be submitted.
type PetFields struct {
	Name       string
	AnimalType string
	Age        string
}

// formData returns the fields in the form the service expects.
func (f PetFields) formData() map[string]string {
	return map[string]string{
		"name":        f.Name,
		"animal_type": f.AnimalType,
		"age":         f.Age,
	}
}

// Empty is used for operations whose body carries nothing of interest.
type Empty struct{}

// UnmarshalJSON accepts any payload, the delete endpoint has returned
// objects, strings and nothing at all over time.
func (*Empty) UnmarshalJSON([]byte) error {
	return nil
}

// Result is the outcome of a single API call.  Value is only populated for
// successful JSON responses, Body always holds the raw response.
type Result[T any] struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Value       T
	Decoded     bool
}

// Text returns the raw body as a string, useful for non-JSON error pages.
func (r *Result[T]) Text() string {
	return string(r.Body)
}

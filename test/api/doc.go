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

// Package api provides end-to-end test utilities for the PetFriends API.
//
// # Target Service
//
// By default the suites run against an in-process fake of the service
// (see pkg/petfriends/fake), which needs no network and no account. Set
// PETFRIENDS_BASE_URL, e.g. https://petfriends.skillfactory.ru, together with
// the PETFRIENDS_VALID_* and PETFRIENDS_INVALID_* credentials to run against
// a real deployment. Values may also be placed in test/.env.
//
// # Test Independence
//
// Every spec acquires its own auth key. Specs that need an existing pet
// create one with CreatePetWithCleanup and friends, which register a
// DeferCleanup to delete it again, so no spec relies on the side effects of
// another or on the state of the account before the run.
//
// # Observed Behaviour
//
// The boundary suite submits malformed input (huge, negative or alphabetic
// ages, numeric breeds, empty fields). The real service accepts all of it;
// those specs are regression checks on that behaviour rather than a
// statement of what the service ought to do.
package api

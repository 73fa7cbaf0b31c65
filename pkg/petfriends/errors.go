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

import (
	"errors"
)

var (
	// ErrTransport is returned when a request cannot be sent or its
	// response cannot be read.
	ErrTransport = errors.New("transport failure")

	// ErrDecode is returned when a JSON response body cannot be decoded.
	ErrDecode = errors.New("response decode failure")

	// ErrPhoto is returned when a local photo cannot be read for upload.
	ErrPhoto = errors.New("photo unavailable")

	// ErrContract is returned when contract validation is enabled and a
	// response does not match the API description.
	ErrContract = errors.New("response violates API contract")
)

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

package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/spjmurray/go-util/pkg/set"
)

// Images shipped with the suite.
const (
	RelaxImage     = "Relax.jpg"
	CorgiButtImage = "Corgi_Butt.jpg"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// ImagePath resolves one of the shipped images.
func ImagePath(config *TestConfig, name string) string {
	return filepath.Join(config.ImagesDir, name)
}

// SameIDs reports whether two listings hold the same set of pet ids,
// ignoring order.
func SameIDs(a, b []string) bool {
	left := set.New[string](a...)
	right := set.New[string](b...)

	onlyLeft := left.Difference(right)
	onlyRight := right.Difference(left)

	return len(slices.Collect(onlyLeft.All())) == 0 && len(slices.Collect(onlyRight.All())) == 0
}

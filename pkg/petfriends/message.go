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
	"bytes"
	"mime"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Message returns a short readable description of the response body.
// The service reports errors as small HTML pages, those are reduced to their
// heading and paragraph text.  Anything else is returned trimmed.
func (r *Result[T]) Message() string {
	if isHTML(r.ContentType) {
		if message := htmlMessage(r.Body); message != "" {
			return message
		}
	}

	return strings.TrimSpace(r.Text())
}

func isHTML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "text/html"
}

func htmlMessage(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	heading := strings.TrimSpace(doc.Find("h1").First().Text())
	detail := strings.TrimSpace(doc.Find("p").First().Text())

	switch {
	case heading != "" && detail != "":
		return heading + ": " + detail
	case heading != "":
		return heading
	case detail != "":
		return detail
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}

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

// Package fake provides an in-process emulation of the PetFriends API.
// It mirrors the observed behaviour of the real service closely enough for
// the end-to-end suites to run without network access, including its lax
// input validation.
package fake

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/petfriends-qa/petfriends-e2e/pkg/petfriends"
)

const (
	// maxUpload bounds multipart bodies held in memory.
	maxUpload = 10 << 20

	forbiddenMessage = "This user wasn't found in database"

	// unmatchedRoute labels requests no route handled.
	unmatchedRoute = "unmatched"
)

type accountKey struct{}

type account struct {
	email    string
	password string
	userID   string
	key      string
}

// Service is the fake PetFriends API.
type Service struct {
	lock sync.Mutex

	accounts map[string]*account
	keys     map[string]*account

	// pets is ordered newest first, as the real service lists them.
	pets   []*petfriends.Pet
	owners map[string]string

	logger   *zap.Logger
	router   chi.Router
	requests *prometheus.CounterVec
}

// New returns an empty service.
func New(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := prometheus.NewRegistry()

	s := &Service{
		accounts: map[string]*account{},
		keys:     map[string]*account{},
		owners:   map[string]string{},
		logger:   logger,
		requests: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "petfriends_fake_requests_total",
				Help: "Total number of requests served by the fake",
			},
			[]string{"method", "route", "status"},
		),
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.logRequests)

	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	router.Get("/api/key", s.getAPIKey)

	router.Group(func(r chi.Router) {
		r.Use(s.requireAuthKey)

		r.Get("/api/pets", s.listPets)
		r.Post("/api/pets", s.createPet)
		r.Post("/api/create_pet_simple", s.createPetSimple)
		r.Put("/api/pets/{petID}", s.updatePet)
		r.Delete("/api/pets/{petID}", s.deletePet)
		r.Post("/api/pets/set_photo/{petID}", s.setPhoto)
	})

	s.router = router

	return s
}

// Start serves the fake on a loopback listener.  Callers must Close it.
func (s *Service) Start() *httptest.Server {
	return httptest.NewServer(s)
}

// AddAccount registers credentials that may obtain an auth key.
func (s *Service) AddAccount(email, password string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	a := &account{
		email:    email,
		password: password,
		userID:   uuid.NewString(),
		key:      strings.ReplaceAll(uuid.NewString(), "-", ""),
	}

	s.accounts[email] = a
	s.keys[a.key] = a
}

// PetCount returns the number of stored pets.
func (s *Service) PetCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return len(s.pets)
}

// Requests counts served requests by method, route pattern and status code.
// The metrics route itself is not counted.
func (s *Service) Requests() *prometheus.CounterVec {
	return s.requests
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		route := unmatchedRoute

		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		if route != "/metrics" {
			s.requests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
		}

		s.logger.Debug("fake petfriends request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("route", route),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}

// htmlError writes an error page shaped like the ones the real service
// returns.
func htmlError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	text := http.StatusText(status)

	_, _ = fmt.Fprintf(w, "<!doctype html>\n<html lang=en>\n<title>%d %s</title>\n<h1>%s</h1>\n<p>%s</p>\n",
		status, text, text, html.EscapeString(message))
}

func forbidden(w http.ResponseWriter) {
	htmlError(w, http.StatusForbidden, forbiddenMessage)
}

func badRequest(w http.ResponseWriter, message string) {
	htmlError(w, http.StatusBadRequest, message)
}

// requireAuthKey rejects requests without a known auth_key before the body
// is looked at, so a bad key always wins over a bad payload.
func (s *Service) requireAuthKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lock.Lock()
		a, ok := s.keys[r.Header.Get("auth_key")]
		s.lock.Unlock()

		if !ok {
			forbidden(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accountKey{}, a)))
	})
}

// caller returns the account resolved by requireAuthKey.  Accounts are never
// mutated after registration so no lock is needed.
func caller(r *http.Request) *account {
	//nolint:forcetypeassert
	return r.Context().Value(accountKey{}).(*account)
}

// find returns a stored pet by id, the lock must be held.
func (s *Service) find(id string) (int, *petfriends.Pet) {
	for i, pet := range s.pets {
		if pet.ID == id {
			return i, pet
		}
	}

	return -1, nil
}

func (s *Service) getAPIKey(w http.ResponseWriter, r *http.Request) {
	email := r.Header.Get("email")
	password := r.Header.Get("password")

	s.lock.Lock()
	defer s.lock.Unlock()

	a, ok := s.accounts[email]
	if email == "" || password == "" || !ok || a.password != password {
		forbidden(w)
		return
	}

	writeJSON(w, http.StatusOK, petfriends.AuthKey{Key: a.key})
}

func (s *Service) listPets(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	a := caller(r)

	filter := petfriends.PetFilter(r.URL.Query().Get("filter"))

	list := petfriends.PetList{
		Pets: []petfriends.Pet{},
	}

	for _, pet := range s.pets {
		if filter == petfriends.MyPets && s.owners[pet.ID] != a.userID {
			continue
		}

		list.Pets = append(list.Pets, *pet)
	}

	writeJSON(w, http.StatusOK, list)
}

// readPhoto encodes the uploaded pet_photo part as a data URI.
func readPhoto(r *http.Request) (string, error) {
	headers := r.MultipartForm.File["pet_photo"]
	if len(headers) == 0 {
		return "", http.ErrMissingFile
	}

	var photo openapi_types.File

	photo.InitFromMultipart(headers[0])

	data, err := photo.Bytes()
	if err != nil {
		return "", err
	}

	contentType := headers[0].Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (s *Service) newPet(r *http.Request, owner *account, photo string) *petfriends.Pet {
	pet := &petfriends.Pet{
		ID:         uuid.NewString(),
		Name:       r.FormValue("name"),
		AnimalType: r.FormValue("animal_type"),
		Age:        petfriends.LooseString(r.FormValue("age")),
		PetPhoto:   photo,
		CreatedAt:  petfriends.LooseString(strconv.FormatFloat(float64(time.Now().UnixNano())/1e9, 'f', 6, 64)),
		UserID:     owner.userID,
	}

	s.pets = append([]*petfriends.Pet{pet}, s.pets...)
	s.owners[pet.ID] = owner.userID

	return pet
}

func (s *Service) createPet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		badRequest(w, err.Error())
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		badRequest(w, "pet_photo is required")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	a := caller(r)

	writeJSON(w, http.StatusOK, s.newPet(r, a, photo))
}

func (s *Service) createPetSimple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, err.Error())
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	a := caller(r)

	writeJSON(w, http.StatusOK, s.newPet(r, a, ""))
}

func (s *Service) updatePet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		badRequest(w, err.Error())
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	a := caller(r)

	_, pet := s.find(chi.URLParam(r, "petID"))
	if pet == nil {
		badRequest(w, "pet not found")
		return
	}

	if s.owners[pet.ID] != a.userID {
		forbidden(w)
		return
	}

	if r.PostForm.Has("name") {
		pet.Name = r.PostForm.Get("name")
	}

	if r.PostForm.Has("animal_type") {
		pet.AnimalType = r.PostForm.Get("animal_type")
	}

	if r.PostForm.Has("age") {
		pet.Age = petfriends.LooseString(r.PostForm.Get("age"))
	}

	writeJSON(w, http.StatusOK, pet)
}

func (s *Service) deletePet(w http.ResponseWriter, r *http.Request) {
	s.lock.Lock()
	defer s.lock.Unlock()

	a := caller(r)

	i, pet := s.find(chi.URLParam(r, "petID"))
	if pet == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	if s.owners[pet.ID] != a.userID {
		forbidden(w)
		return
	}

	s.pets = append(s.pets[:i], s.pets[i+1:]...)
	delete(s.owners, pet.ID)

	w.WriteHeader(http.StatusOK)
}

func (s *Service) setPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		badRequest(w, err.Error())
		return
	}

	photo, err := readPhoto(r)
	if err != nil {
		badRequest(w, "pet_photo is required")
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	a := caller(r)

	_, pet := s.find(chi.URLParam(r, "petID"))
	if pet == nil {
		badRequest(w, "pet not found")
		return
	}

	if s.owners[pet.ID] != a.userID {
		forbidden(w)
		return
	}

	pet.PetPhoto = photo

	writeJSON(w, http.StatusOK, pet)
}

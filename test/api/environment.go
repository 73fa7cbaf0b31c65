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
	"net/http/httptest"

	"go.uber.org/zap"

	"github.com/petfriends-qa/petfriends-e2e/pkg/petfriends"
	"github.com/petfriends-qa/petfriends-e2e/pkg/petfriends/fake"
)

// Environment is the service a suite runs against, either the configured
// remote deployment or a fake started for the run.
type Environment struct {
	Client *petfriends.APIClient
	Logger *zap.Logger

	// Fake is only set when running against the in-process service.
	Fake *fake.Service

	server *httptest.Server
}

// NewEnvironment starts the fake service if needed and builds a client.
func NewEnvironment(config *TestConfig) (*Environment, error) {
	logger := NewLogger(config.LogLevel)

	env := &Environment{
		Logger: logger,
	}

	baseURL := config.BaseURL

	if config.UseFake() {
		env.Fake = fake.New(logger.Named("fake"))
		env.Fake.AddAccount(config.ValidEmail, config.ValidPassword)

		env.server = env.Fake.Start()
		baseURL = env.server.URL

		logger.Info("running against in-process fake service", zap.String("url", baseURL))
	}

	client, err := NewClientForConfig(config, baseURL, logger)
	if err != nil {
		env.Close()
		return nil, err
	}

	env.Client = client

	return env, nil
}

// NewClientForConfig builds a client wired with the configured logging and
// contract validation.
func NewClientForConfig(config *TestConfig, baseURL string, logger *zap.Logger) (*petfriends.APIClient, error) {
	options := []petfriends.Option{
		petfriends.WithTimeout(config.RequestTimeout),
		petfriends.WithLogger(logger.Named("client")),
		petfriends.WithRequestLogging(config.LogRequests, config.LogResponses),
	}

	if config.ValidateContract {
		options = append(options, petfriends.WithContractValidation())
	}

	return petfriends.NewAPIClient(baseURL, options...)
}

// Close stops the fake service, if one was started.
func (e *Environment) Close() {
	if e.server != nil {
		e.server.Close()
	}

	_ = e.Logger.Sync()
}

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

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/petfriends-qa/petfriends-e2e/pkg/petfriends"
)

var (
	errUnexpectedStatus = errors.New("unexpected status")
)

// options are the probe's command line flags.
type options struct {
	baseURL  string
	email    string
	password string
	filter   string
	timeout  time.Duration
	logLevel string
	validate bool
}

func (o *options) addFlags(f *pflag.FlagSet) {
	f.StringVar(&o.baseURL, "base-url", petfriends.DefaultBaseURL, "PetFriends service root.")
	f.StringVar(&o.email, "email", os.Getenv("PETFRIENDS_VALID_EMAIL"), "Account email, defaults to $PETFRIENDS_VALID_EMAIL.")
	f.StringVar(&o.password, "password", os.Getenv("PETFRIENDS_VALID_PASSWORD"), "Account password, defaults to $PETFRIENDS_VALID_PASSWORD.")
	f.StringVar(&o.filter, "filter", "", "Listing filter, empty for all pets or my_pets.")
	f.DurationVar(&o.timeout, "timeout", petfriends.DefaultTimeout, "Per request timeout.")
	f.StringVar(&o.logLevel, "log-level", "info", "Log level, one of debug, info, warn or error.")
	f.BoolVar(&o.validate, "validate-contract", false, "Check responses against the bundled API description.")
}

func newLogger(level string) (*zap.Logger, error) {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(l)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return config.Build()
}

// probe checks the service is usable end to end, it obtains a key and
// lists pets with it.
func probe(ctx context.Context, o *options, logger *zap.Logger) error {
	clientOptions := []petfriends.Option{
		petfriends.WithTimeout(o.timeout),
		petfriends.WithLogger(logger),
		petfriends.WithRequestLogging(true, false),
	}

	if o.validate {
		clientOptions = append(clientOptions, petfriends.WithContractValidation())
	}

	client, err := petfriends.NewAPIClient(o.baseURL, clientOptions...)
	if err != nil {
		return err
	}

	key, err := client.GetAPIKey(ctx, o.email, o.password)
	if err != nil {
		return err
	}

	if key.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: auth key request returned %d: %s", errUnexpectedStatus, key.StatusCode, key.Message())
	}

	pets, err := client.ListPets(ctx, key.Value.Key, petfriends.PetFilter(o.filter))
	if err != nil {
		return err
	}

	if pets.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: listing pets returned %d: %s", errUnexpectedStatus, pets.StatusCode, pets.Message())
	}

	logger.Info("probe succeeded",
		zap.String("base_url", client.BaseURL()),
		zap.String("filter", o.filter),
		zap.Int("pets", len(pets.Value.Pets)),
	)

	return nil
}

func main() {
	var o options

	o.addFlags(pflag.CommandLine)

	pflag.Parse()

	logger, err := newLogger(o.logLevel)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := probe(ctx, &o, logger); err != nil {
		logger.Error("probe failed", zap.Error(err))
		stop()

		_ = logger.Sync()

		os.Exit(1) //nolint:gocritic
	}
}

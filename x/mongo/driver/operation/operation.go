// Copyright (C) MongoDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package operation assembles complete command documents from option
// containers and write models. It does not talk to a server: the output of
// Build is what a connection would send.
package operation

import (
	"github.com/ikmak/mongomodel/internal/logger"
	"github.com/ikmak/mongomodel/mongo/options"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

var (
	// ErrMissingCollection is returned when a command is built without a
	// collection name.
	ErrMissingCollection = errors.New("a collection name is required")

	// ErrNoModels is returned when a write command is built without any
	// write models.
	ErrNoModels = errors.New("at least one write model is required")

	// ErrMixedModels is returned when a write command is given models that
	// belong to different commands.
	ErrMixedModels = errors.New("write models must all belong to the same command")
)

// NewLogger creates a logger from the given options. A nil opts falls back to
// the environment configuration.
func NewLogger(opts *options.LoggerOptions) (*logger.Logger, error) {
	if opts == nil {
		opts = options.Logger()
	}

	componentLevels := make(map[logger.Component]logger.Level)
	for component, level := range opts.ComponentLevels {
		componentLevels[logger.Component(component)] = logger.Level(level)
	}

	log, err := logger.New(opts.Sink, opts.MaxDocumentLength, componentLevels)
	if err != nil {
		return nil, errors.Wrap(err, "error creating logger")
	}

	return log, nil
}

// NewPoolLogger creates a logger from the logger options of the client
// options wrapped by pool.
func NewPoolLogger(pool *options.PoolOptions) (*logger.Logger, error) {
	if pool == nil {
		pool = options.Pool(nil)
	}

	lopts, _ := pool.ClientOpts().LoggerOptions().Get()
	return NewLogger(lopts)
}

// logCommand prints the built command at debug level for the command
// component.
func logCommand(log *logger.Logger, name, database string, cmd bsoncore.Document) {
	if !log.LevelComponentEnabled(logger.LevelDebug, logger.ComponentCommand) {
		return
	}

	kv := logger.KeyValues{}
	kv.Add(logger.KeyCommandName, name)
	if database != "" {
		kv.Add(logger.KeyDatabaseName, database)
	}
	kv.Add(logger.KeyCommand, logger.FormatDocument(cmd, log.MaxDocumentLength))

	log.Print(logger.LevelDebug, logger.ComponentCommand, "Command built", kv...)
}

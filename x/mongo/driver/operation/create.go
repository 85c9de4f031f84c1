// Copyright (C) MongoDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package operation

import (
	"github.com/ikmak/mongomodel/internal/logger"
	"github.com/ikmak/mongomodel/mongo"
	"github.com/ikmak/mongomodel/mongo/options"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Create builds a create command.
type Create struct {
	collectionName string
	database       string
	opts           *options.CreateCollectionOptions
	logger         *logger.Logger
}

// NewCreate constructs and returns a new Create.
func NewCreate(collectionName string) *Create {
	return &Create{
		collectionName: collectionName,
	}
}

// Build returns the create command document.
func (c *Create) Build() (bsoncore.Document, error) {
	if c == nil {
		return nil, errors.Wrap(ErrMissingCollection, "create")
	}

	idx, dst := bsoncore.AppendDocumentStart(nil)
	dst, err := c.command(dst)
	if err != nil {
		return nil, err
	}

	cmd, err := bsoncore.AppendDocumentEnd(dst, idx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to finish create command")
	}
	if err := mongo.ValidateDocument(cmd); err != nil {
		return nil, errors.Wrap(err, "invalid create command")
	}

	logCommand(c.logger, "create", c.database, cmd)
	return cmd, nil
}

func (c *Create) command(dst []byte) ([]byte, error) {
	if c.collectionName == "" {
		return nil, errors.Wrap(ErrMissingCollection, "create")
	}

	dst = bsoncore.AppendStringElement(dst, "create", c.collectionName)
	if c.opts == nil {
		return dst, nil
	}

	dst, err := c.opts.AppendElements(dst)
	if err != nil {
		return nil, errors.Wrap(err, "create")
	}
	return dst, nil
}

// CollectionName sets the name of the collection to create.
func (c *Create) CollectionName(collectionName string) *Create {
	if c == nil {
		c = new(Create)
	}

	c.collectionName = collectionName
	return c
}

// Database sets the database to run this operation against.
func (c *Create) Database(database string) *Create {
	if c == nil {
		c = new(Create)
	}

	c.database = database
	return c
}

// Options sets the create-collection options compiled into the command.
// Several containers are merged, the last one winning per field.
func (c *Create) Options(opts ...*options.CreateCollectionOptions) *Create {
	if c == nil {
		c = new(Create)
	}

	c.opts = options.MergeCreateCollectionOptions(opts...)
	return c
}

// Logger sets the logger used to report the built command.
func (c *Create) Logger(logger *logger.Logger) *Create {
	if c == nil {
		c = new(Create)
	}

	c.logger = logger
	return c
}

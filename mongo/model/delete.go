// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package model

import (
	"github.com/ikmak/mongomodel/mongo"
	"github.com/ikmak/mongomodel/mongo/optional"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// DeleteOne is a write model that deletes at most one document matching a
// filter.
type DeleteOne struct {
	filter    bsoncore.Document
	collation optional.Option[bsoncore.Document]
	hint      optional.Option[mongo.Hint]
}

// NewDeleteOne creates a DeleteOne.
func NewDeleteOne(filter bsoncore.Document) *DeleteOne {
	return &DeleteOne{filter: filter}
}

// Filter returns the filter.
func (do *DeleteOne) Filter() bsoncore.Document {
	return do.filter
}

// SetCollation sets the collation.
func (do *DeleteOne) SetCollation(collation bsoncore.Document) *DeleteOne {
	do.collation = optional.Some(collation)
	return do
}

// Collation returns the collation.
func (do *DeleteOne) Collation() optional.Option[bsoncore.Document] {
	return do.collation
}

// SetHint sets the index hint.
func (do *DeleteOne) SetHint(hint mongo.Hint) *DeleteOne {
	do.hint = optional.Some(hint)
	return do
}

// Hint returns the index hint.
func (do *DeleteOne) Hint() optional.Option[mongo.Hint] {
	return do.hint
}

// CommandName implements WriteModel.
func (*DeleteOne) CommandName() string {
	return CommandDelete
}

// Validate implements WriteModel.
func (do *DeleteOne) Validate() error {
	if do == nil {
		return ErrNilModel
	}
	return validateRequired("filter", do.filter)
}

// ToDocument compiles the model into a delete statement with a limit of 1.
func (do *DeleteOne) ToDocument() bsoncore.Document {
	return appendDeleteStatement(do.filter, 1, do.collation, do.hint)
}

// DeleteMany is a write model that deletes every document matching a filter.
type DeleteMany struct {
	filter    bsoncore.Document
	collation optional.Option[bsoncore.Document]
	hint      optional.Option[mongo.Hint]
}

// NewDeleteMany creates a DeleteMany.
func NewDeleteMany(filter bsoncore.Document) *DeleteMany {
	return &DeleteMany{filter: filter}
}

// Filter returns the filter.
func (dm *DeleteMany) Filter() bsoncore.Document {
	return dm.filter
}

// SetCollation sets the collation.
func (dm *DeleteMany) SetCollation(collation bsoncore.Document) *DeleteMany {
	dm.collation = optional.Some(collation)
	return dm
}

// Collation returns the collation.
func (dm *DeleteMany) Collation() optional.Option[bsoncore.Document] {
	return dm.collation
}

// SetHint sets the index hint.
func (dm *DeleteMany) SetHint(hint mongo.Hint) *DeleteMany {
	dm.hint = optional.Some(hint)
	return dm
}

// Hint returns the index hint.
func (dm *DeleteMany) Hint() optional.Option[mongo.Hint] {
	return dm.hint
}

// CommandName implements WriteModel.
func (*DeleteMany) CommandName() string {
	return CommandDelete
}

// Validate implements WriteModel.
func (dm *DeleteMany) Validate() error {
	if dm == nil {
		return ErrNilModel
	}
	return validateRequired("filter", dm.filter)
}

// ToDocument compiles the model into a delete statement with a limit of 0,
// meaning no limit.
func (dm *DeleteMany) ToDocument() bsoncore.Document {
	return appendDeleteStatement(dm.filter, 0, dm.collation, dm.hint)
}

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

// UpdateMany is a write model that updates every document matching a filter.
type UpdateMany struct {
	fields updateFields
}

// NewUpdateMany creates an UpdateMany applying update to all documents
// matching filter.
func NewUpdateMany(filter, update bsoncore.Document) *UpdateMany {
	return &UpdateMany{fields: updateFields{
		filter: filter,
		update: optional.Some(update),
	}}
}

// NewUpdateManyFromPipeline creates an UpdateMany whose update is an
// aggregation pipeline.
func NewUpdateManyFromPipeline(filter bsoncore.Document, update *mongo.Pipeline) *UpdateMany {
	return NewUpdateMany(filter, pipelineDocument(update))
}

// NewEmptyUpdateMany creates an UpdateMany with no update.
func NewEmptyUpdateMany(filter bsoncore.Document) *UpdateMany {
	return &UpdateMany{fields: updateFields{filter: filter}}
}

// Filter returns the filter.
func (um *UpdateMany) Filter() bsoncore.Document {
	return um.fields.filter
}

// Update returns the update.
func (um *UpdateMany) Update() optional.Option[bsoncore.Document] {
	return um.fields.update
}

// SetCollation sets the collation.
func (um *UpdateMany) SetCollation(collation bsoncore.Document) *UpdateMany {
	um.fields.collation = optional.Some(collation)
	return um
}

// Collation returns the collation.
func (um *UpdateMany) Collation() optional.Option[bsoncore.Document] {
	return um.fields.collation
}

// SetHint sets the index hint.
func (um *UpdateMany) SetHint(hint mongo.Hint) *UpdateMany {
	um.fields.hint = optional.Some(hint)
	return um
}

// Hint returns the index hint.
func (um *UpdateMany) Hint() optional.Option[mongo.Hint] {
	return um.fields.hint
}

// SetUpsert sets the upsert flag.
func (um *UpdateMany) SetUpsert(upsert bool) *UpdateMany {
	um.fields.upsert = optional.Some(upsert)
	return um
}

// Upsert returns the upsert flag.
func (um *UpdateMany) Upsert() optional.Option[bool] {
	return um.fields.upsert
}

// SetArrayFilters sets the array filters.
func (um *UpdateMany) SetArrayFilters(arrayFilters bsoncore.Array) *UpdateMany {
	um.fields.arrayFilters = optional.Some(arrayFilters)
	return um
}

// ArrayFilters returns the array filters.
func (um *UpdateMany) ArrayFilters() optional.Option[bsoncore.Array] {
	return um.fields.arrayFilters
}

// CommandName implements WriteModel.
func (*UpdateMany) CommandName() string {
	return CommandUpdate
}

// Validate implements WriteModel. An update is only required if one was
// given to the constructor.
func (um *UpdateMany) Validate() error {
	if um == nil {
		return ErrNilModel
	}
	return um.fields.validate()
}

// ToDocument compiles the model into an update statement with multi set.
func (um *UpdateMany) ToDocument() bsoncore.Document {
	return um.fields.compile(true)
}

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

// UpdateOne is a write model that updates at most one document matching a
// filter.
type UpdateOne struct {
	fields updateFields
}

// NewUpdateOne creates an UpdateOne that applies the update document (a
// document of update operators) to the first document matching filter.
func NewUpdateOne(filter, update bsoncore.Document) *UpdateOne {
	return &UpdateOne{fields: updateFields{
		filter: filter,
		update: optional.Some(update),
	}}
}

// NewUpdateOneFromPipeline creates an UpdateOne whose update is an
// aggregation pipeline. The pipeline is rendered immediately, so the model is
// identical to one built with NewUpdateOne and the rendered array.
func NewUpdateOneFromPipeline(filter bsoncore.Document, update *mongo.Pipeline) *UpdateOne {
	return NewUpdateOne(filter, pipelineDocument(update))
}

// NewEmptyUpdateOne creates an UpdateOne with no update. Update reports the
// update as unset and the statement is sent with an empty update document.
func NewEmptyUpdateOne(filter bsoncore.Document) *UpdateOne {
	return &UpdateOne{fields: updateFields{filter: filter}}
}

// Filter returns the filter used to select the document to update.
func (uo *UpdateOne) Filter() bsoncore.Document {
	return uo.fields.filter
}

// Update returns the update document, or the rendered pipeline array for a
// model built from a pipeline.
func (uo *UpdateOne) Update() optional.Option[bsoncore.Document] {
	return uo.fields.update
}

// SetCollation sets the collation used for string comparisons.
func (uo *UpdateOne) SetCollation(collation bsoncore.Document) *UpdateOne {
	uo.fields.collation = optional.Some(collation)
	return uo
}

// Collation returns the collation.
func (uo *UpdateOne) Collation() optional.Option[bsoncore.Document] {
	return uo.fields.collation
}

// SetHint sets the index to use for the operation.
func (uo *UpdateOne) SetHint(hint mongo.Hint) *UpdateOne {
	uo.fields.hint = optional.Some(hint)
	return uo
}

// Hint returns the index hint.
func (uo *UpdateOne) Hint() optional.Option[mongo.Hint] {
	return uo.fields.hint
}

// SetUpsert sets whether a new document is inserted when no document matches
// the filter.
func (uo *UpdateOne) SetUpsert(upsert bool) *UpdateOne {
	uo.fields.upsert = optional.Some(upsert)
	return uo
}

// Upsert returns the upsert flag.
func (uo *UpdateOne) Upsert() optional.Option[bool] {
	return uo.fields.upsert
}

// SetArrayFilters sets the filters that determine which array elements an
// update applies to.
func (uo *UpdateOne) SetArrayFilters(arrayFilters bsoncore.Array) *UpdateOne {
	uo.fields.arrayFilters = optional.Some(arrayFilters)
	return uo
}

// ArrayFilters returns the array filters.
func (uo *UpdateOne) ArrayFilters() optional.Option[bsoncore.Array] {
	return uo.fields.arrayFilters
}

// CommandName implements WriteModel.
func (*UpdateOne) CommandName() string {
	return CommandUpdate
}

// Validate implements WriteModel. An update is only required if one was
// given to the constructor.
func (uo *UpdateOne) Validate() error {
	if uo == nil {
		return ErrNilModel
	}
	return uo.fields.validate()
}

// ToDocument compiles the model into an update statement.
func (uo *UpdateOne) ToDocument() bsoncore.Document {
	return uo.fields.compile(false)
}

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

// ReplaceOne is a write model that replaces at most one document matching a
// filter.
type ReplaceOne struct {
	filter      bsoncore.Document
	replacement bsoncore.Document
	collation   optional.Option[bsoncore.Document]
	hint        optional.Option[mongo.Hint]
	upsert      optional.Option[bool]
}

// NewReplaceOne creates a ReplaceOne. The replacement must not contain update
// operators; that is left for the server to check.
func NewReplaceOne(filter, replacement bsoncore.Document) *ReplaceOne {
	return &ReplaceOne{filter: filter, replacement: replacement}
}

// Filter returns the filter.
func (ro *ReplaceOne) Filter() bsoncore.Document {
	return ro.filter
}

// Replacement returns the replacement document.
func (ro *ReplaceOne) Replacement() bsoncore.Document {
	return ro.replacement
}

// SetCollation sets the collation.
func (ro *ReplaceOne) SetCollation(collation bsoncore.Document) *ReplaceOne {
	ro.collation = optional.Some(collation)
	return ro
}

// Collation returns the collation.
func (ro *ReplaceOne) Collation() optional.Option[bsoncore.Document] {
	return ro.collation
}

// SetHint sets the index hint.
func (ro *ReplaceOne) SetHint(hint mongo.Hint) *ReplaceOne {
	ro.hint = optional.Some(hint)
	return ro
}

// Hint returns the index hint.
func (ro *ReplaceOne) Hint() optional.Option[mongo.Hint] {
	return ro.hint
}

// SetUpsert sets the upsert flag.
func (ro *ReplaceOne) SetUpsert(upsert bool) *ReplaceOne {
	ro.upsert = optional.Some(upsert)
	return ro
}

// Upsert returns the upsert flag.
func (ro *ReplaceOne) Upsert() optional.Option[bool] {
	return ro.upsert
}

// CommandName implements WriteModel.
func (*ReplaceOne) CommandName() string {
	return CommandUpdate
}

// Validate implements WriteModel.
func (ro *ReplaceOne) Validate() error {
	if ro == nil {
		return ErrNilModel
	}
	if err := validateRequired("filter", ro.filter); err != nil {
		return err
	}
	return validateRequired("replacement", ro.replacement)
}

// ToDocument compiles the model into an update statement in the order q, u,
// upsert, collation, hint.
func (ro *ReplaceOne) ToDocument() bsoncore.Document {
	idx, doc := bsoncore.AppendDocumentStart(nil)
	doc = bsoncore.AppendDocumentElement(doc, "q", mongo.DocumentOrEmpty(ro.filter))
	doc = bsoncore.AppendDocumentElement(doc, "u", mongo.DocumentOrEmpty(ro.replacement))
	if upsert, ok := ro.upsert.Get(); ok {
		doc = bsoncore.AppendBooleanElement(doc, "upsert", upsert)
	}
	if collation, ok := ro.collation.Get(); ok {
		doc = bsoncore.AppendDocumentElement(doc, "collation", mongo.DocumentOrEmpty(collation))
	}
	if hint, ok := ro.hint.Get(); ok {
		doc = hint.AppendElement(doc, "hint")
	}
	doc, _ = bsoncore.AppendDocumentEnd(doc, idx)
	return doc
}

// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package model contains the write models accepted by bulk and single
// document write operations. A model holds the required inputs of one write
// (a filter, an update, a document) plus optional settings, and compiles to
// the statement document embedded in an insert, update or delete command.
package model

import (
	"strconv"
	"strings"

	"github.com/ikmak/mongomodel/mongo"
	"github.com/ikmak/mongomodel/mongo/optional"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Command names that write models are sent with.
const (
	CommandInsert = "insert"
	CommandUpdate = "update"
	CommandDelete = "delete"
)

// ErrNilModel is returned when a nil write model is validated.
var ErrNilModel = errors.New("write model is nil")

// WriteModel is the interface satisfied by all write models.
type WriteModel interface {
	// CommandName returns the name of the command the statement belongs to.
	CommandName() string

	// Validate reports required documents that are nil or malformed.
	Validate() error

	// ToDocument compiles the model into a single statement for its command.
	// Nil documents are compiled as empty documents.
	ToDocument() bsoncore.Document
}

// validateRequired checks a document the model cannot be sent without.
func validateRequired(name string, doc bsoncore.Document) error {
	if doc == nil {
		return errors.Wrapf(mongo.ErrNilDocument, "%s is required", name)
	}
	if err := doc.Validate(); err != nil {
		return errors.Wrapf(err, "invalid %s document", name)
	}
	return nil
}

var (
	_ WriteModel = (*InsertOne)(nil)
	_ WriteModel = (*UpdateOne)(nil)
	_ WriteModel = (*UpdateMany)(nil)
	_ WriteModel = (*ReplaceOne)(nil)
	_ WriteModel = (*DeleteOne)(nil)
	_ WriteModel = (*DeleteMany)(nil)
)

// updateFields are the fields shared by UpdateOne and UpdateMany.
type updateFields struct {
	filter       bsoncore.Document
	update       optional.Option[bsoncore.Document]
	collation    optional.Option[bsoncore.Document]
	hint         optional.Option[mongo.Hint]
	upsert       optional.Option[bool]
	arrayFilters optional.Option[bsoncore.Array]
}

// pipelineDocument stores a rendered pipeline the same way a caller-supplied
// array document would be stored.
func pipelineDocument(p *mongo.Pipeline) bsoncore.Document {
	return bsoncore.Document(p.ViewArray())
}

// isPipeline reports whether doc is the array form of an aggregation pipeline:
// a non-empty sequence of documents keyed "0", "1", ... whose first keys are
// stage names starting with "$".
func isPipeline(doc bsoncore.Document) bool {
	elems, err := doc.Elements()
	if err != nil || len(elems) == 0 {
		return false
	}

	for i, elem := range elems {
		if elem.Key() != strconv.Itoa(i) {
			return false
		}
		stage, ok := elem.Value().DocumentOK()
		if !ok {
			return false
		}
		first, err := stage.IndexErr(0)
		if err != nil || !strings.HasPrefix(first.Key(), "$") {
			return false
		}
	}
	return true
}

// appendUpdate appends the "u" element. A pipeline is sent as an array, an
// absent update as an empty document.
func appendUpdate(dst []byte, update optional.Option[bsoncore.Document]) []byte {
	doc, ok := update.Get()
	if !ok {
		return bsoncore.AppendDocumentElement(dst, "u", mongo.EmptyDocument())
	}
	doc = mongo.DocumentOrEmpty(doc)
	if isPipeline(doc) {
		return bsoncore.AppendArrayElement(dst, "u", bsoncore.Array(doc))
	}
	return bsoncore.AppendDocumentElement(dst, "u", doc)
}

func (uf *updateFields) validate() error {
	if err := validateRequired("filter", uf.filter); err != nil {
		return err
	}
	if update, ok := uf.update.Get(); ok {
		return validateRequired("update", update)
	}
	return nil
}

// compile emits an update statement in the order q, u, upsert, multi,
// collation, arrayFilters, hint.
func (uf *updateFields) compile(multi bool) bsoncore.Document {
	idx, doc := bsoncore.AppendDocumentStart(nil)
	doc = bsoncore.AppendDocumentElement(doc, "q", mongo.DocumentOrEmpty(uf.filter))
	doc = appendUpdate(doc, uf.update)
	if upsert, ok := uf.upsert.Get(); ok {
		doc = bsoncore.AppendBooleanElement(doc, "upsert", upsert)
	}
	if multi {
		doc = bsoncore.AppendBooleanElement(doc, "multi", true)
	}
	if collation, ok := uf.collation.Get(); ok {
		doc = bsoncore.AppendDocumentElement(doc, "collation", mongo.DocumentOrEmpty(collation))
	}
	if arrayFilters, ok := uf.arrayFilters.Get(); ok {
		doc = bsoncore.AppendArrayElement(doc, "arrayFilters", mongo.ArrayOrEmpty(arrayFilters))
	}
	if hint, ok := uf.hint.Get(); ok {
		doc = hint.AppendElement(doc, "hint")
	}
	doc, _ = bsoncore.AppendDocumentEnd(doc, idx)
	return doc
}

// appendDeleteStatement emits a delete statement in the order q, limit,
// collation, hint.
func appendDeleteStatement(filter bsoncore.Document, limit int32,
	collation optional.Option[bsoncore.Document], hint optional.Option[mongo.Hint]) bsoncore.Document {
	idx, doc := bsoncore.AppendDocumentStart(nil)
	doc = bsoncore.AppendDocumentElement(doc, "q", mongo.DocumentOrEmpty(filter))
	doc = bsoncore.AppendInt32Element(doc, "limit", limit)
	if c, ok := collation.Get(); ok {
		doc = bsoncore.AppendDocumentElement(doc, "collation", mongo.DocumentOrEmpty(c))
	}
	if h, ok := hint.Get(); ok {
		doc = h.AppendElement(doc, "hint")
	}
	doc, _ = bsoncore.AppendDocumentEnd(doc, idx)
	return doc
}

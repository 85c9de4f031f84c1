// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package model

import (
	"github.com/ikmak/mongomodel/mongo"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// InsertOne is a write model that inserts a single document.
type InsertOne struct {
	document bsoncore.Document
}

// NewInsertOne creates an InsertOne for document.
func NewInsertOne(document bsoncore.Document) *InsertOne {
	return &InsertOne{document: document}
}

// Document returns the document to insert.
func (iom *InsertOne) Document() bsoncore.Document {
	return iom.document
}

// CommandName implements WriteModel.
func (*InsertOne) CommandName() string {
	return CommandInsert
}

// Validate implements WriteModel.
func (iom *InsertOne) Validate() error {
	if iom == nil {
		return ErrNilModel
	}
	return validateRequired("document", iom.document)
}

// ToDocument returns the document itself, which is the insert statement.
func (iom *InsertOne) ToDocument() bsoncore.Document {
	return mongo.DocumentOrEmpty(iom.document)
}

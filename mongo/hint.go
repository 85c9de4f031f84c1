// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Hint names the index the server should use for an operation, either by
// index name or by the index key pattern. A Hint is immutable; its contents
// are passed to the server without interpretation.
type Hint struct {
	name  string
	index bsoncore.Document
}

// NewHintName creates a Hint referring to an index by name.
func NewHintName(name string) Hint {
	return Hint{name: name}
}

// NewHintIndex creates a Hint referring to an index by its key pattern, e.g.
// {a: 1, b: -1}. A nil index is treated as an empty key pattern.
func NewHintIndex(index bsoncore.Document) Hint {
	return Hint{index: DocumentOrEmpty(index)}
}

// Name returns the index name and true if the Hint was created with
// NewHintName.
func (h Hint) Name() (string, bool) {
	return h.name, h.index == nil
}

// Index returns the index key pattern and true if the Hint was created with
// NewHintIndex.
func (h Hint) Index() (bsoncore.Document, bool) {
	return h.index, h.index != nil
}

// Value returns the wire value of the Hint: a string for a named index or an
// embedded document for a key pattern.
func (h Hint) Value() bsoncore.Value {
	if h.index != nil {
		return bsoncore.Value{Type: bsontype.EmbeddedDocument, Data: h.index}
	}
	return stringValue(h.name)
}

// AppendElement appends the Hint to dst as an element named key.
func (h Hint) AppendElement(dst []byte, key string) []byte {
	return bsoncore.AppendValueElement(dst, key, h.Value())
}

// String implements fmt.Stringer.
func (h Hint) String() string {
	if h.index != nil {
		return h.index.String()
	}
	return h.name
}

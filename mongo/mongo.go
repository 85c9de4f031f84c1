// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// MarshalDocument transforms val into a bsoncore.Document. Values that are
// already BSON (bsoncore.Document, bson.Raw, []byte) are validated and
// returned without copying; anything else is marshalled with bson.Marshal.
func MarshalDocument(val interface{}) (bsoncore.Document, error) {
	var doc bsoncore.Document

	switch t := val.(type) {
	case nil:
		return nil, ErrNilDocument
	case bsoncore.Document:
		doc = t
	case bson.Raw:
		doc = bsoncore.Document(t)
	case []byte:
		doc = bsoncore.Document(t)
	default:
		b, err := bson.Marshal(t)
		if err != nil {
			return nil, MarshalError{Value: val, Err: err}
		}
		return bsoncore.Document(b), nil
	}

	if err := doc.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid BSON document")
	}
	return doc, nil
}

// MarshalArray transforms val into a bsoncore.Array. A bsoncore.Array is
// validated and returned as is; slices such as bson.A or []interface{} are
// marshalled.
func MarshalArray(val interface{}) (bsoncore.Array, error) {
	switch t := val.(type) {
	case nil:
		return nil, ErrNilDocument
	case bsoncore.Array:
		if err := t.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid BSON array")
		}
		return t, nil
	}

	// Encode the value in a single-element document and pull the array back
	// out of it.
	b, err := bson.Marshal(bson.D{{Key: "a", Value: val}})
	if err != nil {
		return nil, MarshalError{Value: val, Err: err}
	}

	arr, ok := bsoncore.Document(b).Lookup("a").ArrayOK()
	if !ok {
		return nil, MarshalError{Value: val, Err: ErrNotArray}
	}
	return arr, nil
}

// ConcatDocuments appends the elements of each document in docs to dst. The
// elements are spliced in directly, without a wrapping key, so dst must be a
// document under construction (see bsoncore.AppendDocumentStart). A nil
// document contributes nothing. If a document cannot be parsed, dst is returned unchanged along with the error.
func ConcatDocuments(dst []byte, docs ...bsoncore.Document) ([]byte, error) {
	out := dst
	for i, doc := range docs {
		elems, err := DocumentOrEmpty(doc).Elements()
		if err != nil {
			return dst, errors.Wrapf(err, "unable to splice document %d", i)
		}
		for _, elem := range elems {
			out = append(out, elem...)
		}
	}
	return out, nil
}

// ValidateDocument checks doc and every document and array nested in it.
// bsoncore.Document.Validate only checks the lengths of nested values.
func ValidateDocument(doc bsoncore.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	elems, err := doc.Elements()
	if err != nil {
		return err
	}
	for _, elem := range elems {
		val := elem.Value()
		switch val.Type {
		case bsontype.EmbeddedDocument, bsontype.Array:
			if err := ValidateDocument(bsoncore.Document(val.Data)); err != nil {
				return errors.Wrapf(err, "invalid value for %q", elem.Key())
			}
		}
	}
	return nil
}

// EmptyDocument returns a new, valid BSON document with no elements.
func EmptyDocument() bsoncore.Document {
	return bsoncore.BuildDocument(nil)
}

// DocumentOrEmpty returns doc, or an empty document if doc is nil. A nil
// bsoncore.Document has no length prefix and cannot be embedded as is.
func DocumentOrEmpty(doc bsoncore.Document) bsoncore.Document {
	if doc == nil {
		return EmptyDocument()
	}
	return doc
}

// ArrayOrEmpty returns arr, or an empty array if arr is nil.
func ArrayOrEmpty(arr bsoncore.Array) bsoncore.Array {
	if arr == nil {
		return bsoncore.Array(EmptyDocument())
	}
	return arr
}

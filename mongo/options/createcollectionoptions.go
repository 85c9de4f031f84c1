// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"github.com/ikmak/mongomodel/mongo"
	"github.com/pkg/errors"
	"github.com/ikmak/mongomodel/mongo/optional"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// noPaddingFlag is the legacy "flags" bit that disables record padding.
const noPaddingFlag int32 = 0x10

// CreateCollectionOptions represents options that can be used to configure a
// create collection command. Each option can be set through setter functions,
// which return the receiver so calls can be chained. Options that are never
// set are left out of the compiled document entirely.
//
// No option values are validated locally; conflicting settings are reported
// by the server.
type CreateCollectionOptions struct {
	capped        optional.Option[bool]
	collation     optional.Option[bsoncore.Document]
	maxDocuments  optional.Option[int64]
	maxSize       optional.Option[int64]
	noPadding     optional.Option[bool]
	storageEngine optional.Option[bsoncore.Document]
	validation    optional.Option[*ValidationCriteria]
}

// CreateCollection creates a new CreateCollectionOptions instance with every
// option unset.
func CreateCollection() *CreateCollectionOptions {
	return &CreateCollectionOptions{}
}

// SetCapped specifies whether the collection is capped. A capped collection
// also needs a size (see SetSize).
func (c *CreateCollectionOptions) SetCapped(capped bool) *CreateCollectionOptions {
	c.capped = optional.Some(capped)
	return c
}

// Capped returns the Capped option.
func (c *CreateCollectionOptions) Capped() optional.Option[bool] {
	return c.capped
}

// SetCollation specifies the default collation for the collection. The
// document can be produced with Collation.ToDocument.
func (c *CreateCollectionOptions) SetCollation(collation bsoncore.Document) *CreateCollectionOptions {
	c.collation = optional.Some(collation)
	return c
}

// Collation returns the Collation option.
func (c *CreateCollectionOptions) Collation() optional.Option[bsoncore.Document] {
	return c.collation
}

// SetMax specifies the maximum number of documents allowed in a capped
// collection. The size limit takes precedence over this option.
func (c *CreateCollectionOptions) SetMax(maxDocuments int64) *CreateCollectionOptions {
	c.maxDocuments = optional.Some(maxDocuments)
	return c
}

// Max returns the Max option.
func (c *CreateCollectionOptions) Max() optional.Option[int64] {
	return c.maxDocuments
}

// SetNoPadding specifies whether record padding is disabled for the
// collection. This only has an effect on the MMAPv1 storage engine.
func (c *CreateCollectionOptions) SetNoPadding(noPadding bool) *CreateCollectionOptions {
	c.noPadding = optional.Some(noPadding)
	return c
}

// NoPadding returns the NoPadding option.
func (c *CreateCollectionOptions) NoPadding() optional.Option[bool] {
	return c.noPadding
}

// SetSize specifies the maximum size in bytes of a capped collection.
func (c *CreateCollectionOptions) SetSize(maxSize int64) *CreateCollectionOptions {
	c.maxSize = optional.Some(maxSize)
	return c
}

// Size returns the Size option.
func (c *CreateCollectionOptions) Size() optional.Option[int64] {
	return c.maxSize
}

// SetStorageEngine specifies storage engine options for the collection. The
// document must be of the form {<storage engine name>: <options>}.
func (c *CreateCollectionOptions) SetStorageEngine(storageEngine bsoncore.Document) *CreateCollectionOptions {
	c.storageEngine = optional.Some(storageEngine)
	return c
}

// StorageEngine returns the StorageEngine option.
func (c *CreateCollectionOptions) StorageEngine() optional.Option[bsoncore.Document] {
	return c.storageEngine
}

// SetValidationCriteria specifies the document validation rules for the
// collection.
func (c *CreateCollectionOptions) SetValidationCriteria(validation *ValidationCriteria) *CreateCollectionOptions {
	c.validation = optional.Some(validation)
	return c
}

// ValidationCriteria returns the ValidationCriteria option.
func (c *CreateCollectionOptions) ValidationCriteria() optional.Option[*ValidationCriteria] {
	return c.validation
}

// ToDocument compiles the options that are set into the create command's
// option fields, in the order capped, collation, max, size, flags,
// storageEngine, followed by the validation criteria fields spliced in at the
// top level. An instance with no options set compiles to an empty document.
// Nil documents are compiled as empty documents.
//
// A validation group that cannot be spliced is left out; use AppendElements
// to have that reported as an error.
func (c *CreateCollectionOptions) ToDocument() bsoncore.Document {
	idx, doc := bsoncore.AppendDocumentStart(nil)
	doc, _ = c.AppendElements(doc)
	doc, _ = bsoncore.AppendDocumentEnd(doc, idx)
	return doc
}

// ToDocumentDeprecated returns the same document as ToDocument.
//
// Deprecated: Use ToDocument instead.
func (c *CreateCollectionOptions) ToDocumentDeprecated() bsoncore.Document {
	return c.ToDocument()
}

// AppendElements appends the compiled option fields to dst, which must be a
// document under construction, in the same order as ToDocument. If the
// validation group cannot be spliced, the fields before it are kept and the
// error is returned.
func (c *CreateCollectionOptions) AppendElements(dst []byte) ([]byte, error) {
	if capped, ok := c.capped.Get(); ok {
		dst = bsoncore.AppendBooleanElement(dst, "capped", capped)
	}
	if collation, ok := c.collation.Get(); ok {
		dst = bsoncore.AppendDocumentElement(dst, "collation", mongo.DocumentOrEmpty(collation))
	}
	if maxDocuments, ok := c.maxDocuments.Get(); ok {
		dst = bsoncore.AppendInt64Element(dst, "max", maxDocuments)
	}
	if maxSize, ok := c.maxSize.Get(); ok {
		dst = bsoncore.AppendInt64Element(dst, "size", maxSize)
	}
	if noPadding, ok := c.noPadding.Get(); ok {
		flags := int32(0x00)
		if noPadding {
			flags = noPaddingFlag
		}
		dst = bsoncore.AppendInt32Element(dst, "flags", flags)
	}
	if storageEngine, ok := c.storageEngine.Get(); ok {
		dst = bsoncore.AppendDocumentElement(dst, "storageEngine", mongo.DocumentOrEmpty(storageEngine))
	}
	if validation, ok := c.validation.Get(); ok && validation != nil {
		var err error
		dst, err = mongo.ConcatDocuments(dst, validation.ToDocument())
		if err != nil {
			return dst, errors.Wrap(err, "invalid validation criteria")
		}
	}
	return dst, nil
}

// MergeCreateCollectionOptions combines the given CreateCollectionOptions
// instances into a single CreateCollectionOptions in a last-one-wins fashion.
func MergeCreateCollectionOptions(opts ...*CreateCollectionOptions) *CreateCollectionOptions {
	cc := CreateCollection()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if opt.capped.IsSet() {
			cc.capped = opt.capped
		}
		if opt.collation.IsSet() {
			cc.collation = opt.collation
		}
		if opt.maxDocuments.IsSet() {
			cc.maxDocuments = opt.maxDocuments
		}
		if opt.maxSize.IsSet() {
			cc.maxSize = opt.maxSize
		}
		if opt.noPadding.IsSet() {
			cc.noPadding = opt.noPadding
		}
		if opt.storageEngine.IsSet() {
			cc.storageEngine = opt.storageEngine
		}
		if opt.validation.IsSet() {
			cc.validation = opt.validation
		}
	}

	return cc
}

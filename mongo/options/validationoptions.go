// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"github.com/ikmak/mongomodel/mongo"
	"github.com/ikmak/mongomodel/mongo/optional"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// ValidationLevel determines how strictly the server applies validation rules
// to existing documents during an update.
type ValidationLevel string

// These constants are the valid validation levels.
const (
	ValidationLevelOff      ValidationLevel = "off"
	ValidationLevelModerate ValidationLevel = "moderate"
	ValidationLevelStrict   ValidationLevel = "strict"
)

// ValidationAction determines whether the server rejects invalid documents or
// only logs a warning.
type ValidationAction string

// These constants are the valid validation actions.
const (
	ValidationActionError ValidationAction = "error"
	ValidationActionWarn  ValidationAction = "warn"
)

// ValidationCriteria is a group of options describing document validation for
// a collection. It is set on CreateCollectionOptions, which splices its fields
// into the top level of the command.
type ValidationCriteria struct {
	rule   optional.Option[bsoncore.Document]
	level  optional.Option[ValidationLevel]
	action optional.Option[ValidationAction]
}

// Validation creates a new ValidationCriteria instance.
func Validation() *ValidationCriteria {
	return &ValidationCriteria{}
}

// SetRule sets the validator document.
func (vc *ValidationCriteria) SetRule(rule bsoncore.Document) *ValidationCriteria {
	vc.rule = optional.Some(rule)
	return vc
}

// Rule returns the validator document.
func (vc *ValidationCriteria) Rule() optional.Option[bsoncore.Document] {
	return vc.rule
}

// SetLevel sets the validation level.
func (vc *ValidationCriteria) SetLevel(level ValidationLevel) *ValidationCriteria {
	vc.level = optional.Some(level)
	return vc
}

// Level returns the validation level.
func (vc *ValidationCriteria) Level() optional.Option[ValidationLevel] {
	return vc.level
}

// SetAction sets the validation action.
func (vc *ValidationCriteria) SetAction(action ValidationAction) *ValidationCriteria {
	vc.action = optional.Some(action)
	return vc
}

// Action returns the validation action.
func (vc *ValidationCriteria) Action() optional.Option[ValidationAction] {
	return vc.action
}

// ToDocument compiles the criteria into a document with the keys validator,
// validationLevel and validationAction, omitting any that are unset. A nil
// rule is compiled as an empty validator.
func (vc *ValidationCriteria) ToDocument() bsoncore.Document {
	idx, doc := bsoncore.AppendDocumentStart(nil)
	if rule, ok := vc.rule.Get(); ok {
		doc = bsoncore.AppendDocumentElement(doc, "validator", mongo.DocumentOrEmpty(rule))
	}
	if level, ok := vc.level.Get(); ok {
		doc = bsoncore.AppendStringElement(doc, "validationLevel", string(level))
	}
	if action, ok := vc.action.Get(); ok {
		doc = bsoncore.AppendStringElement(doc, "validationAction", string(action))
	}
	doc, _ = bsoncore.AppendDocumentEnd(doc, idx)
	return doc
}

// ToDocumentDeprecated returns the same document as ToDocument.
//
// Deprecated: Use ToDocument instead.
func (vc *ValidationCriteria) ToDocumentDeprecated() bsoncore.Document {
	return vc.ToDocument()
}

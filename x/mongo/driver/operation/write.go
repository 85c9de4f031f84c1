// Copyright (C) MongoDB, Inc. 2019-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package operation

import (
	"strconv"

	"github.com/ikmak/mongomodel/internal/logger"
	"github.com/ikmak/mongomodel/internal/ptrutil"
	"github.com/ikmak/mongomodel/mongo"
	"github.com/ikmak/mongomodel/mongo/model"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// statementKeys maps a write command to the key of its statement array.
var statementKeys = map[string]string{
	model.CommandInsert: "documents",
	model.CommandUpdate: "updates",
	model.CommandDelete: "deletes",
}

// Write builds an insert, update or delete command from write models. The
// command is chosen by the models, which must all agree.
type Write struct {
	collectionName           string
	database                 string
	models                   []model.WriteModel
	ordered                  *bool
	bypassDocumentValidation *bool
	comment                  bsoncore.Value
	logger                   *logger.Logger
}

// NewWrite constructs and returns a new Write.
func NewWrite(collectionName string, models ...model.WriteModel) *Write {
	return &Write{
		collectionName: collectionName,
		models:         models,
	}
}

// CommandName returns the name of the command the models belong to.
func (w *Write) CommandName() (string, error) {
	if w == nil || len(w.models) == 0 {
		return "", ErrNoModels
	}

	var name string
	for i, m := range w.models {
		if m == nil {
			return "", errors.Wrapf(model.ErrNilModel, "model %d", i)
		}
		if i == 0 {
			name = m.CommandName()
			continue
		}
		if m.CommandName() != name {
			return "", errors.Wrapf(ErrMixedModels, "model %d is %q, expected %q", i, m.CommandName(), name)
		}
	}
	return name, nil
}

// Build returns the write command document.
func (w *Write) Build() (bsoncore.Document, error) {
	name, err := w.CommandName()
	if err != nil {
		return nil, err
	}
	if w.collectionName == "" {
		return nil, errors.Wrap(ErrMissingCollection, name)
	}
	for i, m := range w.models {
		if err := m.Validate(); err != nil {
			return nil, errors.Wrapf(err, "invalid %s model %d", name, i)
		}
	}

	idx, dst := bsoncore.AppendDocumentStart(nil)
	dst = w.command(dst, name)
	cmd, err := bsoncore.AppendDocumentEnd(dst, idx)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to finish %s command", name)
	}
	if err := mongo.ValidateDocument(cmd); err != nil {
		return nil, errors.Wrapf(err, "invalid %s command", name)
	}

	logCommand(w.logger, name, w.database, cmd)
	return cmd, nil
}

func (w *Write) command(dst []byte, name string) []byte {
	dst = bsoncore.AppendStringElement(dst, name, w.collectionName)

	aidx, dst := bsoncore.AppendArrayElementStart(dst, statementKeys[name])
	for i, m := range w.models {
		dst = bsoncore.AppendDocumentElement(dst, strconv.Itoa(i), m.ToDocument())
	}
	dst, _ = bsoncore.AppendArrayEnd(dst, aidx)

	if w.ordered != nil {
		dst = bsoncore.AppendBooleanElement(dst, "ordered", *w.ordered)
	}
	if w.bypassDocumentValidation != nil && name != model.CommandDelete {
		dst = bsoncore.AppendBooleanElement(dst, "bypassDocumentValidation", *w.bypassDocumentValidation)
	}
	if w.comment.Type != 0 {
		dst = bsoncore.AppendValueElement(dst, "comment", w.comment)
	}
	return dst
}

// CollectionName sets the collection the command writes to.
func (w *Write) CollectionName(collectionName string) *Write {
	if w == nil {
		w = new(Write)
	}

	w.collectionName = collectionName
	return w
}

// Database sets the database to run this operation against.
func (w *Write) Database(database string) *Write {
	if w == nil {
		w = new(Write)
	}

	w.database = database
	return w
}

// Models appends write models to the command.
func (w *Write) Models(models ...model.WriteModel) *Write {
	if w == nil {
		w = new(Write)
	}

	w.models = append(w.models, models...)
	return w
}

// Ordered sets whether the server stops at the first failed statement.
func (w *Write) Ordered(ordered bool) *Write {
	if w == nil {
		w = new(Write)
	}

	w.ordered = ptrutil.Ptr(ordered)
	return w
}

// BypassDocumentValidation allows inserts and updates to skip collection
// validation. It is not sent with delete commands.
func (w *Write) BypassDocumentValidation(bypass bool) *Write {
	if w == nil {
		w = new(Write)
	}

	w.bypassDocumentValidation = ptrutil.Ptr(bypass)
	return w
}

// Comment sets a value to help trace the operation through the server logs.
func (w *Write) Comment(comment bsoncore.Value) *Write {
	if w == nil {
		w = new(Write)
	}

	w.comment = comment
	return w
}

// Logger sets the logger used to report the built command.
func (w *Write) Logger(logger *logger.Logger) *Write {
	if w == nil {
		w = new(Write)
	}

	w.logger = logger
	return w
}

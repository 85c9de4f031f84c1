// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilDocument is returned when a nil value is provided where a document
// is required.
var ErrNilDocument = errors.New("document is nil")

// ErrNotArray is returned by MarshalArray when the value does not encode as
// a BSON array.
var ErrNotArray = errors.New("value does not marshal to a BSON array")

// MarshalError is returned when attempting to transform a value into a
// document or array results in an error.
type MarshalError struct {
	Value interface{}
	Err   error
}

// Error implements the error interface.
func (me MarshalError) Error() string {
	return fmt.Sprintf("cannot transform type %s to a BSON Document: %v", reflect.TypeOf(me.Value), me.Err)
}

// Unwrap returns the underlying error.
func (me MarshalError) Unwrap() error {
	return me.Err
}

// Copyright (C) MongoDB, Inc. 2023-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package assert contains BSON-aware extensions to the testify "assert"
// package.
package assert

import (
	"bytes"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/pretty"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// TestingT is an interface wrapper around *testing.T.
type TestingT = assert.TestingT

type tHelper interface {
	Helper()
}

// DifferentAddressRanges asserts that two byte slices reference distinct memory
// address ranges, meaning they reference different underlying byte arrays.
func DifferentAddressRanges(t TestingT, a, b []byte) (ok bool) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if len(a) == 0 || len(b) == 0 {
		return true
	}

	// Find the start and end memory addresses for the underlying byte array for
	// each input byte slice.
	sliceAddrRange := func(b []byte) (uintptr, uintptr) {
		start := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
		return start, start + uintptr(cap(b)-1)
	}
	aStart, aEnd := sliceAddrRange(a)
	bStart, bEnd := sliceAddrRange(b)

	// If "b" starts after "a" ends or "a" starts after "b" ends, there is no
	// overlap.
	if bStart > aEnd || aStart > bEnd {
		return true
	}

	t.Errorf("Byte slices point to the same underlying byte array:\n"+
		"\ta addresses:\t%d ... %d\n"+
		"\tb addresses:\t%d ... %d",
		aStart, aEnd,
		bStart, bEnd)

	return false
}

// EqualBSON asserts that the expected and actual BSON documents are byte for
// byte equal. If they are not, both are printed as indented Extended JSON.
func EqualBSON(t TestingT, expected, actual bsoncore.Document, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if bytes.Equal(expected, actual) {
		return true
	}

	return assert.Fail(t,
		"expected and actual BSON documents do not match\n"+
			"Expected:\n"+prettyDocument(expected)+"\n"+
			"Actual:\n"+prettyDocument(actual),
		msgAndArgs...)
}

// DocumentKeys asserts that the top-level keys of doc are exactly keys, in
// order.
func DocumentKeys(t TestingT, doc bsoncore.Document, keys ...string) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	elems, err := doc.Elements()
	if !assert.NoError(t, err, "invalid document") {
		return false
	}

	got := make([]string, 0, len(elems))
	for _, elem := range elems {
		got = append(got, elem.Key())
	}
	if keys == nil {
		keys = []string{}
	}

	return assert.Equal(t, keys, got, "unexpected keys in %s", prettyDocument(doc))
}

func prettyDocument(doc bsoncore.Document) string {
	if len(doc) == 0 {
		return "<empty>"
	}
	if err := doc.Validate(); err != nil {
		return "<invalid BSON: " + err.Error() + ">"
	}

	return string(pretty.Pretty([]byte(bson.Raw(doc).String())))
}

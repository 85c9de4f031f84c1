// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package mongo holds the values that option containers and write models are
// built from: aggregation pipelines, index hints and helpers for turning Go
// values into BSON documents.
//
// Documents and arrays are carried as bsoncore.Document and bsoncore.Array.
// Both are plain byte slices, so they can either borrow existing BSON or own a
// freshly built copy; nothing in this module mutates a document it was given.
//
// A Pipeline renders itself as an array of stages:
//
//    p := mongo.NewPipeline().
//        Match(bsoncore.NewDocumentBuilder().AppendString("status", "A").Build()).
//        Limit(10)
//    arr := p.ViewArray()
//
// Values that are not already BSON can be converted with MarshalDocument and
// MarshalArray:
//
//    filter, err := mongo.MarshalDocument(bson.D{{"x", 1}})
//    if err != nil { log.Fatal(err) }
//
// The option containers themselves live in the options package and the write
// models in the model package.
package mongo

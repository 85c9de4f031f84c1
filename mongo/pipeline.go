// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"strconv"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// Pipeline is an ordered list of aggregation stages. Each stage method appends
// one stage and returns the Pipeline so calls can be chained. Stage
// specifications are used verbatim; the server validates them.
type Pipeline struct {
	stages []bsoncore.Document
}

// NewPipeline creates an empty Pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

func (p *Pipeline) appendStage(stage string, spec bsoncore.Value) *Pipeline {
	p.stages = append(p.stages, bsoncore.BuildDocumentFromElements(nil,
		bsoncore.AppendValueElement(nil, stage, spec)))
	return p
}

func (p *Pipeline) appendDocumentStage(stage string, spec bsoncore.Document) *Pipeline {
	p.stages = append(p.stages, bsoncore.BuildDocumentFromElements(nil,
		bsoncore.AppendDocumentElement(nil, stage, spec)))
	return p
}

// AppendStage appends an arbitrary, already-built stage document such as
// {$geoNear: {...}}.
func (p *Pipeline) AppendStage(stage bsoncore.Document) *Pipeline {
	p.stages = append(p.stages, stage)
	return p
}

// AppendStages appends every document of stages, which must be an array of
// stage documents. Values that are not documents are skipped, and nothing is
// appended if stages cannot be parsed; compare Len before and after the call
// to detect either case.
func (p *Pipeline) AppendStages(stages bsoncore.Array) *Pipeline {
	vals, err := stages.Values()
	if err != nil {
		return p
	}
	for _, val := range vals {
		if doc, ok := val.DocumentOK(); ok {
			p.stages = append(p.stages, doc)
		}
	}
	return p
}

// AddFields appends an $addFields stage.
func (p *Pipeline) AddFields(fields bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$addFields", fields)
}

// Bucket appends a $bucket stage.
func (p *Pipeline) Bucket(spec bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$bucket", spec)
}

// BucketAuto appends a $bucketAuto stage.
func (p *Pipeline) BucketAuto(spec bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$bucketAuto", spec)
}

// Count appends a $count stage writing the number of documents to field.
func (p *Pipeline) Count(field string) *Pipeline {
	return p.appendStage("$count", stringValue(field))
}

// Facet appends a $facet stage.
func (p *Pipeline) Facet(facets bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$facet", facets)
}

// Group appends a $group stage.
func (p *Pipeline) Group(spec bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$group", spec)
}

// Limit appends a $limit stage.
func (p *Pipeline) Limit(limit int32) *Pipeline {
	return p.appendStage("$limit", int32Value(limit))
}

// Lookup appends a $lookup stage.
func (p *Pipeline) Lookup(spec bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$lookup", spec)
}

// Match appends a $match stage.
func (p *Pipeline) Match(filter bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$match", filter)
}

// Merge appends a $merge stage.
func (p *Pipeline) Merge(spec bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$merge", spec)
}

// Out appends an $out stage writing to collection.
func (p *Pipeline) Out(collection string) *Pipeline {
	return p.appendStage("$out", stringValue(collection))
}

// Project appends a $project stage.
func (p *Pipeline) Project(projection bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$project", projection)
}

// Redact appends a $redact stage.
func (p *Pipeline) Redact(expr bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$redact", expr)
}

// ReplaceRoot appends a $replaceRoot stage.
func (p *Pipeline) ReplaceRoot(spec bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$replaceRoot", spec)
}

// Sample appends a $sample stage selecting size random documents.
func (p *Pipeline) Sample(size int32) *Pipeline {
	spec := bsoncore.BuildDocumentFromElements(nil, bsoncore.AppendInt32Element(nil, "size", size))
	return p.appendDocumentStage("$sample", spec)
}

// Set appends a $set stage, the alias of $addFields.
func (p *Pipeline) Set(fields bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$set", fields)
}

// Skip appends a $skip stage.
func (p *Pipeline) Skip(skip int32) *Pipeline {
	return p.appendStage("$skip", int32Value(skip))
}

// Sort appends a $sort stage.
func (p *Pipeline) Sort(ordering bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$sort", ordering)
}

// Unset appends an $unset stage. A single field is emitted as a string,
// several as an array of strings.
func (p *Pipeline) Unset(fields ...string) *Pipeline {
	if len(fields) == 1 {
		return p.appendStage("$unset", stringValue(fields[0]))
	}

	idx, arr := bsoncore.AppendArrayStart(nil)
	for i, field := range fields {
		arr = bsoncore.AppendStringElement(arr, strconv.Itoa(i), field)
	}
	arr, _ = bsoncore.AppendArrayEnd(arr, idx)
	return p.appendStage("$unset", bsoncore.Value{Type: bsontype.Array, Data: arr})
}

// Unwind appends an $unwind stage on the given field path.
func (p *Pipeline) Unwind(path string) *Pipeline {
	return p.appendStage("$unwind", stringValue(path))
}

// UnwindWithOptions appends an $unwind stage using the document form, which
// allows includeArrayIndex and preserveNullAndEmptyArrays.
func (p *Pipeline) UnwindWithOptions(spec bsoncore.Document) *Pipeline {
	return p.appendDocumentStage("$unwind", spec)
}

// Len returns the number of stages in the Pipeline.
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.stages)
}

// ViewArray renders the Pipeline as a BSON array of stage documents. Every
// call builds a new array; the Pipeline is not modified.
func (p *Pipeline) ViewArray() bsoncore.Array {
	idx, arr := bsoncore.AppendArrayStart(nil)
	if p != nil {
		for i, stage := range p.stages {
			arr = bsoncore.AppendDocumentElement(arr, strconv.Itoa(i), stage)
		}
	}
	arr, _ = bsoncore.AppendArrayEnd(arr, idx)
	return bsoncore.Array(arr)
}

func stringValue(s string) bsoncore.Value {
	return bsoncore.Value{Type: bsontype.String, Data: bsoncore.AppendString(nil, s)}
}

func int32Value(i int32) bsoncore.Value {
	return bsoncore.Value{Type: bsontype.Int32, Data: bsoncore.AppendInt32(nil, i)}
}

// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

func mustDoc(t *testing.T, val interface{}) bsoncore.Document {
	t.Helper()

	doc, err := MarshalDocument(val)
	require.NoError(t, err)
	return doc
}

func TestPipeline(t *testing.T) {
	t.Parallel()

	t.Run("empty pipeline renders an empty array", func(t *testing.T) {
		t.Parallel()

		arr := NewPipeline().ViewArray()
		require.NoError(t, arr.Validate())

		vals, err := arr.Values()
		require.NoError(t, err)
		assert.Len(t, vals, 0)

		var nilPipeline *Pipeline
		assert.Equal(t, arr, nilPipeline.ViewArray())
		assert.Equal(t, 0, nilPipeline.Len())
	})

	t.Run("stages are rendered in order", func(t *testing.T) {
		t.Parallel()

		p := NewPipeline().
			Match(mustDoc(t, bson.D{{Key: "status", Value: "A"}})).
			Group(mustDoc(t, bson.D{{Key: "_id", Value: "$cust_id"}, {Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}}})).
			Sort(mustDoc(t, bson.D{{Key: "total", Value: -1}})).
			Skip(5).
			Limit(10).
			Count("n").
			Out("results")
		assert.Equal(t, 7, p.Len())

		want, err := MarshalArray(bson.A{
			bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: "A"}}}},
			bson.D{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$cust_id"}, {Key: "total", Value: bson.D{{Key: "$sum", Value: "$amount"}}}}}},
			bson.D{{Key: "$sort", Value: bson.D{{Key: "total", Value: -1}}}},
			bson.D{{Key: "$skip", Value: int32(5)}},
			bson.D{{Key: "$limit", Value: int32(10)}},
			bson.D{{Key: "$count", Value: "n"}},
			bson.D{{Key: "$out", Value: "results"}},
		})
		require.NoError(t, err)
		assert.Equal(t, want, p.ViewArray())
	})

	t.Run("unset", func(t *testing.T) {
		t.Parallel()

		single, err := MarshalArray(bson.A{bson.D{{Key: "$unset", Value: "a"}}})
		require.NoError(t, err)
		assert.Equal(t, single, NewPipeline().Unset("a").ViewArray())

		multi, err := MarshalArray(bson.A{bson.D{{Key: "$unset", Value: bson.A{"a", "b"}}}})
		require.NoError(t, err)
		assert.Equal(t, multi, NewPipeline().Unset("a", "b").ViewArray())
	})

	t.Run("sample and unwind", func(t *testing.T) {
		t.Parallel()

		p := NewPipeline().
			Sample(3).
			Unwind("$sizes").
			UnwindWithOptions(mustDoc(t, bson.D{{Key: "path", Value: "$tags"}, {Key: "preserveNullAndEmptyArrays", Value: true}}))

		want, err := MarshalArray(bson.A{
			bson.D{{Key: "$sample", Value: bson.D{{Key: "size", Value: int32(3)}}}},
			bson.D{{Key: "$unwind", Value: "$sizes"}},
			bson.D{{Key: "$unwind", Value: bson.D{{Key: "path", Value: "$tags"}, {Key: "preserveNullAndEmptyArrays", Value: true}}}},
		})
		require.NoError(t, err)
		assert.Equal(t, want, p.ViewArray())
	})

	t.Run("append stages skips what it cannot use", func(t *testing.T) {
		t.Parallel()

		p := NewPipeline().Limit(1)
		p.AppendStages(bsoncore.Array{0x01, 0x02})
		assert.Equal(t, 1, p.Len())

		p.AppendStages(nil)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("append stages", func(t *testing.T) {
		t.Parallel()

		stages, err := MarshalArray(bson.A{
			bson.D{{Key: "$set", Value: bson.D{{Key: "a", Value: 1}}}},
			"not a stage",
			bson.D{{Key: "$project", Value: bson.D{{Key: "a", Value: 1}}}},
		})
		require.NoError(t, err)

		p := NewPipeline().
			AppendStages(stages).
			AppendStage(mustDoc(t, bson.D{{Key: "$geoNear", Value: bson.D{{Key: "near", Value: bson.A{0, 0}}}}}))
		assert.Equal(t, 3, p.Len())

		want := NewPipeline().
			Set(mustDoc(t, bson.D{{Key: "a", Value: 1}})).
			Project(mustDoc(t, bson.D{{Key: "a", Value: 1}})).
			AppendStage(mustDoc(t, bson.D{{Key: "$geoNear", Value: bson.D{{Key: "near", Value: bson.A{0, 0}}}}}))
		assert.Equal(t, want.ViewArray(), p.ViewArray())
	})

	t.Run("ViewArray does not change the pipeline", func(t *testing.T) {
		t.Parallel()

		p := NewPipeline().Limit(1)
		first := p.ViewArray()
		second := p.ViewArray()
		assert.Equal(t, first, second)
		assert.Equal(t, 1, p.Len())
	})
}

func TestHint(t *testing.T) {
	t.Parallel()

	t.Run("name", func(t *testing.T) {
		t.Parallel()

		h := NewHintName("a_1")
		name, ok := h.Name()
		assert.True(t, ok)
		assert.Equal(t, "a_1", name)

		_, ok = h.Index()
		assert.False(t, ok)
		assert.Equal(t, "a_1", h.Value().StringValue())
		assert.Equal(t, "a_1", h.String())
	})

	t.Run("index", func(t *testing.T) {
		t.Parallel()

		idx := mustDoc(t, bson.D{{Key: "a", Value: 1}, {Key: "b", Value: -1}})
		h := NewHintIndex(idx)

		got, ok := h.Index()
		assert.True(t, ok)
		assert.Equal(t, idx, got)

		_, ok = h.Name()
		assert.False(t, ok)
		assert.Equal(t, idx, h.Value().Document())
	})

	t.Run("nil index is an empty key pattern", func(t *testing.T) {
		t.Parallel()

		h := NewHintIndex(nil)

		got, ok := h.Index()
		assert.True(t, ok)
		assert.Equal(t, EmptyDocument(), got)

		_, ok = h.Name()
		assert.False(t, ok)
		assert.Equal(t, bsontype.EmbeddedDocument, h.Value().Type)

		doc := bsoncore.Document(bsoncore.BuildDocumentFromElements(nil, h.AppendElement(nil, "hint")))
		require.NoError(t, doc.Validate())
		assert.Equal(t, mustDoc(t, bson.D{{Key: "hint", Value: bson.D{}}}), doc)
	})

	t.Run("AppendElement", func(t *testing.T) {
		t.Parallel()

		doc := bsoncore.Document(bsoncore.BuildDocumentFromElements(nil, NewHintName("a_1").AppendElement(nil, "hint")))
		assert.Equal(t, mustDoc(t, bson.D{{Key: "hint", Value: "a_1"}}), doc)
	})
}

func TestMarshalDocument(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		_, err := MarshalDocument(nil)
		assert.ErrorIs(t, err, ErrNilDocument)
	})

	t.Run("bsoncore passthrough", func(t *testing.T) {
		t.Parallel()

		doc := bsoncore.Document(bsoncore.BuildDocumentFromElements(nil, bsoncore.AppendInt32Element(nil, "x", 1)))
		got, err := MarshalDocument(doc)
		require.NoError(t, err)
		assert.Equal(t, doc, got)

		got, err = MarshalDocument(bson.Raw(doc))
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	})

	t.Run("invalid bytes", func(t *testing.T) {
		t.Parallel()

		_, err := MarshalDocument([]byte{0x01, 0x02})
		assert.Error(t, err)
	})

	t.Run("unmarshalable value", func(t *testing.T) {
		t.Parallel()

		_, err := MarshalDocument(42)
		var me MarshalError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, 42, me.Value)
		assert.Contains(t, err.Error(), "cannot transform type int")
	})

	t.Run("array", func(t *testing.T) {
		t.Parallel()

		arr, err := MarshalArray(bson.A{int32(1), "two"})
		require.NoError(t, err)

		vals, err := arr.Values()
		require.NoError(t, err)
		require.Len(t, vals, 2)
		assert.Equal(t, int32(1), vals[0].Int32())
		assert.Equal(t, "two", vals[1].StringValue())

		_, err = MarshalArray(bson.D{{Key: "x", Value: 1}})
		assert.ErrorIs(t, err, ErrNotArray)
	})
}

func TestConcatDocuments(t *testing.T) {
	t.Parallel()

	a := mustDoc(t, bson.D{{Key: "a", Value: 1}, {Key: "b", Value: "two"}})
	b := mustDoc(t, bson.D{{Key: "c", Value: true}})

	idx, dst := bsoncore.AppendDocumentStart(nil)
	dst = bsoncore.AppendInt32Element(dst, "first", 0)
	dst, err := ConcatDocuments(dst, a, EmptyDocument(), nil, b)
	require.NoError(t, err)
	dst, err = bsoncore.AppendDocumentEnd(dst, idx)
	require.NoError(t, err)

	assert.Equal(t, mustDoc(t, bson.D{{Key: "first", Value: int32(0)}, {Key: "a", Value: 1}, {Key: "b", Value: "two"}, {Key: "c", Value: true}}), bsoncore.Document(dst))
}

func TestConcatDocumentsMalformed(t *testing.T) {
	t.Parallel()

	a := mustDoc(t, bson.D{{Key: "a", Value: 1}})

	idx, dst := bsoncore.AppendDocumentStart(nil)
	start := len(dst)
	got, err := ConcatDocuments(dst, a, bsoncore.Document{0xff, 0x00, 0x00, 0x00, 0x00})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to splice document 1")
	assert.Len(t, got, start, "a failed splice must not leave partial elements behind")

	got, err = bsoncore.AppendDocumentEnd(got, idx)
	require.NoError(t, err)
	assert.Equal(t, EmptyDocument(), bsoncore.Document(got))
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	valid := mustDoc(t, bson.D{{Key: "a", Value: bson.D{{Key: "b", Value: bson.A{bson.D{{Key: "c", Value: "d"}}}}}}})
	assert.NoError(t, ValidateDocument(valid))
	assert.NoError(t, ValidateDocument(EmptyDocument()))
	assert.ErrorIs(t, ValidateDocument(nil), ErrNilDocument)

	// The innermost document claims five bytes but only two are present.
	inner := bsoncore.BuildDocumentFromElements(nil,
		bsoncore.AppendDocumentElement(nil, "bad", bsoncore.Document{0x05, 0x00}))
	outer := bsoncore.BuildDocumentFromElements(nil,
		bsoncore.AppendDocumentElement(nil, "inner", inner),
		bsoncore.AppendStringElement(nil, "after", "x"))

	assert.Error(t, ValidateDocument(outer))
}

func TestDocumentOrEmpty(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, bson.D{{Key: "a", Value: 1}})
	assert.Equal(t, doc, DocumentOrEmpty(doc))
	assert.Equal(t, EmptyDocument(), DocumentOrEmpty(nil))
	assert.NoError(t, bsoncore.Array(ArrayOrEmpty(nil)).Validate())
	assert.Equal(t, 0, len(mustValues(t, ArrayOrEmpty(nil))))
}

func mustValues(t *testing.T, arr bsoncore.Array) []bsoncore.Value {
	t.Helper()

	vals, err := arr.Values()
	require.NoError(t, err)
	return vals
}

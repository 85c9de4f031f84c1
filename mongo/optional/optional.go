// Copyright (C) MongoDB, Inc. 2024-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package optional provides a presence wrapper for option values. An unset
// Option is distinct from a set Option holding the zero value of T, which is
// what lets option containers tell "not configured" apart from "configured to
// false/0/empty".
package optional

import "fmt"

// Option holds a value of type T that may or may not be present. The zero
// value is an absent Option.
type Option[T any] struct {
	value T
	set   bool
}

// Some returns a present Option holding val.
func Some[T any](val T) Option[T] {
	return Option[T]{value: val, set: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns a present Option holding *ptr, or an absent Option if ptr is
// nil.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSet reports whether the Option holds a value.
func (o Option[T]) IsSet() bool {
	return o.set
}

// Get returns the held value and whether it is present. If the Option is
// absent the zero value of T is returned alongside false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.set
}

// OrElse returns the held value, or def if the Option is absent.
func (o Option[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// Ptr returns a pointer to a copy of the held value, or nil if absent.
func (o Option[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	val := o.value
	return &val
}

// String implements fmt.Stringer.
func (o Option[T]) String() string {
	if !o.set {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

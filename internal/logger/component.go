// Copyright (C) MongoDB, Inc. 2023-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package logger

import (
	"os"
	"strings"
)

const (
	mongoDBLogAllEnvVar     = "MONGODB_LOG_ALL"
	mongoDBLogCommandEnvVar = "MONGODB_LOG_COMMAND"
)

// Component is an enumeration representing the "components" which can be
// logged against. A LogLevel can be configured on a per-component basis.
type Component int

const (
	// ComponentAll enables logging for all components.
	ComponentAll Component = iota

	// ComponentCommand enables logging of compiled command documents.
	ComponentCommand
)

// Keys used in the key-value pairs handed to a LogSink.
const (
	KeyCommand      = "command"
	KeyCommandName  = "commandName"
	KeyDatabaseName = "databaseName"
	KeyCollection   = "collection"
	KeyMessage      = "message"
	KeyTimestamp    = "timestamp"
)

// KeyValues is a list of alternating keys and values.
type KeyValues []interface{}

// Add adds a key-value pair to an instance of a KeyValues list.
func (kvs *KeyValues) Add(key string, value interface{}) {
	*kvs = append(*kvs, key, value)
}

var componentEnvVarMap = map[string]Component{
	mongoDBLogAllEnvVar:     ComponentAll,
	mongoDBLogCommandEnvVar: ComponentCommand,
}

// EnvHasComponentVariables returns true if the environment contains any of the
// component environment variables.
func EnvHasComponentVariables() bool {
	for envVar := range componentEnvVarMap {
		if os.Getenv(envVar) != "" {
			return true
		}
	}

	return false
}

// getEnvComponentLevels returns the component levels set through the
// environment. MONGODB_LOG_ALL applies to every component and takes precedence
// over the per-component variables.
func getEnvComponentLevels() map[Component]Level {
	componentLevels := make(map[Component]Level)

	globalLevel := ParseLevel(strings.ToLower(os.Getenv(mongoDBLogAllEnvVar)))

	for envVar, component := range componentEnvVarMap {
		if component == ComponentAll {
			continue
		}

		level := globalLevel
		if level == LevelOff {
			level = ParseLevel(strings.ToLower(os.Getenv(envVar)))
		}

		componentLevels[component] = level
	}

	return componentLevels
}

// Copyright (C) MongoDB, Inc. 2023-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options_test

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/ikmak/mongomodel/mongo"
	"github.com/ikmak/mongomodel/mongo/options"
	"go.mongodb.org/mongo-driver/bson"
)

type CustomLogger struct {
	io.Writer
	mu sync.Mutex
}

func (logger *CustomLogger) Info(level int, msg string, _ ...interface{}) {
	logger.mu.Lock()
	defer logger.mu.Unlock()

	fmt.Fprintf(logger, "level=%d msg=%s\n", level, msg)
}

func (logger *CustomLogger) Error(err error, msg string, _ ...interface{}) {
	logger.mu.Lock()
	defer logger.mu.Unlock()

	fmt.Fprintf(logger, "err=%v msg=%s\n", err, msg)
}

func ExampleCreateCollectionOptions_ToDocument() {
	rule, err := mongo.MarshalDocument(bson.D{{Key: "name", Value: bson.D{{Key: "$type", Value: "string"}}}})
	if err != nil {
		log.Fatal(err)
	}

	opts := options.CreateCollection().
		SetCapped(true).
		SetSize(1 << 20).
		SetNoPadding(true).
		SetValidationCriteria(options.Validation().
			SetRule(rule).
			SetLevel(options.ValidationLevelModerate))

	doc := opts.ToDocument()

	elems, err := doc.Elements()
	if err != nil {
		log.Fatal(err)
	}
	for _, elem := range elems {
		fmt.Println(elem.Key())
	}
	fmt.Println("flags:", doc.Lookup("flags").Int32())

	// Output:
	// capped
	// size
	// flags
	// validator
	// validationLevel
	// flags: 16
}

func ExampleClientOptions_SetLoggerOptions_customLogger() {
	buf := bytes.NewBuffer(nil)
	sink := &CustomLogger{Writer: buf}

	// Create a client configuration that logs compiled commands at the debug
	// level to the custom sink.
	loggerOptions := options.
		Logger().
		SetSink(sink).
		SetComponentLevel(options.LogComponentCommand, options.LogLevelDebug)

	clientOptions := options.Client().
		SetAppName("example").
		SetLoggerOptions(loggerOptions)

	pool := options.Pool(clientOptions)

	lopts, _ := pool.ClientOpts().LoggerOptions().Get()
	fmt.Println(lopts.ComponentLevels[options.LogComponentCommand] == options.LogLevelDebug)

	// Output:
	// true
}

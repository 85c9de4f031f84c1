// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

type nopSink struct{}

func (nopSink) Info(int, string, ...interface{})    {}
func (nopSink) Error(error, string, ...interface{}) {}

func TestClientOptions(t *testing.T) {
	t.Parallel()

	t.Run("new instance has no options set", func(t *testing.T) {
		t.Parallel()

		c := Client()
		assert.False(t, c.AppName().IsSet())
		assert.False(t, c.Hosts().IsSet())
		assert.False(t, c.MaxPoolSize().IsSet())
		assert.False(t, c.MinPoolSize().IsSet())
		assert.False(t, c.MaxConnIdleTime().IsSet())
		assert.False(t, c.ConnectTimeout().IsSet())
		assert.False(t, c.ReplicaSet().IsSet())
		assert.False(t, c.RetryWrites().IsSet())
		assert.False(t, c.LoggerOptions().IsSet())
	})

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		lopts := Logger().SetComponentLevel(LogComponentCommand, LogLevelDebug)
		c := Client().
			SetAppName("reports").
			SetHosts([]string{"localhost:27017", "localhost:27018"}).
			SetMaxPoolSize(0).
			SetMinPoolSize(5).
			SetMaxConnIdleTime(time.Minute).
			SetConnectTimeout(10 * time.Second).
			SetReplicaSet("rs0").
			SetRetryWrites(false).
			SetLoggerOptions(lopts)

		assert.Equal(t, "reports", c.AppName().OrElse(""))
		assert.Equal(t, []string{"localhost:27017", "localhost:27018"}, c.Hosts().OrElse(nil))

		maxPoolSize, ok := c.MaxPoolSize().Get()
		assert.True(t, ok, "zero must still be reported as set")
		assert.Equal(t, uint64(0), maxPoolSize)

		assert.Equal(t, uint64(5), c.MinPoolSize().OrElse(0))
		assert.Equal(t, time.Minute, c.MaxConnIdleTime().OrElse(0))
		assert.Equal(t, 10*time.Second, c.ConnectTimeout().OrElse(0))
		assert.Equal(t, "rs0", c.ReplicaSet().OrElse(""))

		retry, ok := c.RetryWrites().Get()
		assert.True(t, ok)
		assert.False(t, retry)

		assert.Same(t, lopts, c.LoggerOptions().OrElse(nil))
	})
}

func TestPoolOptions(t *testing.T) {
	t.Parallel()

	t.Run("default client options", func(t *testing.T) {
		t.Parallel()

		p := Pool(nil)
		if diff := cmp.Diff(Client(), p.ClientOpts(), exportAll); diff != "" {
			t.Errorf("expected empty client options (-want +got):\n%s", diff)
		}
	})

	t.Run("wraps given client options", func(t *testing.T) {
		t.Parallel()

		c := Client().SetAppName("pooled")
		p := Pool(c)
		assert.Same(t, c, p.ClientOpts())
		assert.Equal(t, "pooled", p.ClientOpts().AppName().OrElse(""))
	})
}

func TestLoggerOptions(t *testing.T) {
	t.Parallel()

	lopts := Logger().
		SetComponentLevel(LogComponentAll, LogLevelInfo).
		SetComponentLevel(LogComponentCommand, LogLevelDebug).
		SetMaxDocumentLength(200).
		SetSink(nopSink{})

	assert.Equal(t, map[LogComponent]LogLevel{
		LogComponentAll:     LogLevelInfo,
		LogComponentCommand: LogLevelDebug,
	}, lopts.ComponentLevels)
	assert.Equal(t, uint(200), lopts.MaxDocumentLength)
	assert.Equal(t, nopSink{}, lopts.Sink)

	zero := &LoggerOptions{}
	zero.SetComponentLevel(LogComponentCommand, LogLevelInfo)
	assert.Equal(t, LogLevelInfo, zero.ComponentLevels[LogComponentCommand])
}

// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

import (
	"time"

	"github.com/ikmak/mongomodel/mongo/optional"
)

// ClientOptions contains options to configure a client. Every option starts
// unset; getters report whether an option was configured rather than
// substituting a default.
type ClientOptions struct {
	appName         optional.Option[string]
	hosts           optional.Option[[]string]
	maxPoolSize     optional.Option[uint64]
	minPoolSize     optional.Option[uint64]
	maxConnIdleTime optional.Option[time.Duration]
	connectTimeout  optional.Option[time.Duration]
	replicaSet      optional.Option[string]
	retryWrites     optional.Option[bool]
	loggerOptions   optional.Option[*LoggerOptions]
}

// Client creates a new ClientOptions instance.
func Client() *ClientOptions {
	return &ClientOptions{}
}

// SetAppName specifies an application name that is sent to the server when
// creating new connections.
func (c *ClientOptions) SetAppName(s string) *ClientOptions {
	c.appName = optional.Some(s)
	return c
}

// AppName returns the AppName option.
func (c *ClientOptions) AppName() optional.Option[string] {
	return c.appName
}

// SetHosts specifies a list of host names or IP addresses for servers in a
// cluster, with optional ports in the form "host:port".
func (c *ClientOptions) SetHosts(s []string) *ClientOptions {
	c.hosts = optional.Some(s)
	return c
}

// Hosts returns the Hosts option.
func (c *ClientOptions) Hosts() optional.Option[[]string] {
	return c.hosts
}

// SetMaxPoolSize specifies the maximum number of connections allowed in the
// connection pool of each server. Zero means no limit.
func (c *ClientOptions) SetMaxPoolSize(u uint64) *ClientOptions {
	c.maxPoolSize = optional.Some(u)
	return c
}

// MaxPoolSize returns the MaxPoolSize option.
func (c *ClientOptions) MaxPoolSize() optional.Option[uint64] {
	return c.maxPoolSize
}

// SetMinPoolSize specifies the minimum number of connections kept in the
// connection pool of each server.
func (c *ClientOptions) SetMinPoolSize(u uint64) *ClientOptions {
	c.minPoolSize = optional.Some(u)
	return c
}

// MinPoolSize returns the MinPoolSize option.
func (c *ClientOptions) MinPoolSize() optional.Option[uint64] {
	return c.minPoolSize
}

// SetMaxConnIdleTime specifies the maximum amount of time that a connection
// will remain idle in a connection pool before it is removed.
func (c *ClientOptions) SetMaxConnIdleTime(d time.Duration) *ClientOptions {
	c.maxConnIdleTime = optional.Some(d)
	return c
}

// MaxConnIdleTime returns the MaxConnIdleTime option.
func (c *ClientOptions) MaxConnIdleTime() optional.Option[time.Duration] {
	return c.maxConnIdleTime
}

// SetConnectTimeout specifies a timeout that is used for creating connections
// to the server.
func (c *ClientOptions) SetConnectTimeout(d time.Duration) *ClientOptions {
	c.connectTimeout = optional.Some(d)
	return c
}

// ConnectTimeout returns the ConnectTimeout option.
func (c *ClientOptions) ConnectTimeout() optional.Option[time.Duration] {
	return c.connectTimeout
}

// SetReplicaSet specifies the replica set name for the cluster.
func (c *ClientOptions) SetReplicaSet(s string) *ClientOptions {
	c.replicaSet = optional.Some(s)
	return c
}

// ReplicaSet returns the ReplicaSet option.
func (c *ClientOptions) ReplicaSet() optional.Option[string] {
	return c.replicaSet
}

// SetRetryWrites specifies whether supported write operations should be
// retried once on certain errors.
func (c *ClientOptions) SetRetryWrites(b bool) *ClientOptions {
	c.retryWrites = optional.Some(b)
	return c
}

// RetryWrites returns the RetryWrites option.
func (c *ClientOptions) RetryWrites() optional.Option[bool] {
	return c.retryWrites
}

// SetLoggerOptions specifies the logging configuration.
func (c *ClientOptions) SetLoggerOptions(lopts *LoggerOptions) *ClientOptions {
	c.loggerOptions = optional.Some(lopts)
	return c
}

// LoggerOptions returns the LoggerOptions option.
func (c *ClientOptions) LoggerOptions() optional.Option[*LoggerOptions] {
	return c.loggerOptions
}

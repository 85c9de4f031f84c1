// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package options

// PoolOptions configures a pool of clients. Every client taken from the pool
// is configured with the same ClientOptions.
type PoolOptions struct {
	clientOpts *ClientOptions
}

// Pool creates a new PoolOptions instance wrapping clientOpts. A nil
// clientOpts is replaced with an empty ClientOptions.
func Pool(clientOpts *ClientOptions) *PoolOptions {
	if clientOpts == nil {
		clientOpts = Client()
	}
	return &PoolOptions{clientOpts: clientOpts}
}

// ClientOpts returns the ClientOptions used for clients created by the pool.
func (p *PoolOptions) ClientOpts() *ClientOptions {
	return p.clientOpts
}

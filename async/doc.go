// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package async bridges a ringchan.Channel to goroutines with backpressure
// notification and graceful shutdown: a blocking Next/Send pair built on
// context.Context cancellation and a sink-flavored readiness contract for
// callers that want to buffer one item ahead of a flush.
//
// # Quick Start
//
//	factory, rx := async.NewChannel[Event](ringchan.DefaultConfig(), async.DefaultStreamConfig())
//	defer rx.Close()
//
//	tx, err := factory.Register()
//	if err != nil {
//	    // too many producers, or already closed
//	}
//
//	go func() {
//	    for _, evt := range events {
//	        if err := tx.Send(ctx, evt); err != nil {
//	            return // ctx done or channel closed
//	        }
//	    }
//	    tx.Close()
//	}()
//
//	for {
//	    evt, ok := rx.Next(ctx)
//	    if !ok {
//	        break
//	    }
//	    handle(evt)
//	}
//
// # Graceful Shutdown
//
//	signal := rx.ShutdownSignal()
//	go func() {
//	    <-someExternalDoneSignal
//	    signal.Shutdown() // safe to call from any goroutine, any number of times
//	}()
//
// After Shutdown, keep calling Next until it returns false: the receiver
// drains every remaining item before ending the stream.
package async

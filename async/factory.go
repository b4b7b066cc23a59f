// Copyright 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "code.hybscloud.com/ringchan"

// Factory builds [Sender]s over a shared [ringchan.Channel] and owns the
// notifiers and shutdown state every Sender and the paired [Receiver] see.
// It holds only pointers, so copying a Factory by value is a cheap,
// correct clone - every copy shares the same underlying channel.
type Factory[T any] struct {
	channel  *ringchan.Channel[T]
	data     *wakeOne
	space    *broadcast
	shutdown *shutdownState
}

// NewChannel builds a Factory and its paired Receiver, wiring a fresh
// [ringchan.Channel] sized by config and polled per streamConfig.
func NewChannel[T any](config ringchan.Config, streamConfig StreamConfig) (Factory[T], *Receiver[T]) {
	f := Factory[T]{
		channel:  ringchan.NewChannel[T](config),
		data:     newWakeOne(),
		space:    newBroadcast(),
		shutdown: newShutdownState(),
	}
	rv := newReceiver(f.channel, f.data, f.space, f.shutdown, streamConfig)
	return f, rv
}

// Register claims a new dedicated ring and returns a [Sender] bound to it.
// Returns ErrClosed if the factory (or its channel) is already closed, or
// a *[RegistrationError] wrapping the channel's own registration error
// (e.g. too many producers).
func (f Factory[T]) Register() (*Sender[T], error) {
	if f.shutdown.isClosed() {
		return nil, ErrClosed
	}
	producer, err := f.channel.Register()
	if err != nil {
		return nil, &RegistrationError{Cause: err}
	}
	return newSender(producer, f.data, f.space, f.shutdown), nil
}

// Close blocks new registrations and closes the underlying channel and
// every registered ring, so existing senders report ErrClosed from then
// on. Items already committed stay drainable; this does not itself trigger
// the drain/shutdown sequence [Receiver.Shutdown] does.
func (f Factory[T]) Close() {
	f.shutdown.closeRegistration()
	f.channel.Close()
}

// IsClosed reports whether the factory is closed for new registrations.
func (f Factory[T]) IsClosed() bool {
	return f.shutdown.isClosed()
}

// ProducerCount returns the number of senders registered so far.
func (f Factory[T]) ProducerCount() int {
	return f.channel.ProducerCount()
}

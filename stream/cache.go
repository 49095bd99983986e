// Copyright (c) 2024, The FEAGI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stream

import (
	"fmt"
	"sync"

	"github.com/feagi/feagi-core-data/cdata"
	"github.com/feagi/feagi-core-data/cortical"
)

// SubscriptionHandle identifies one registered callback, stable across
// the life of the subscription, for later unsubscription.
type SubscriptionHandle uint64

// Callback is invoked synchronously inside Submit after the processor
// step, in registration order, on the motor (output) side of a device
// group (spec.md §4.3, §5).
type Callback func(emitted cdata.Bounded)

type groupKey struct {
	typ      cortical.Type
	grouping cdata.GroupingIndex
}

type groupRegistration struct {
	resolution   int
	channelCount int
}

type subscription struct {
	handle SubscriptionHandle
	cb     Callback
}

type channelState struct {
	proc      Processor
	latest    cdata.Bounded
	hasLatest bool
	subs      []subscription
}

// Cache is the device-group cache: per cortical type, a mapping from
// (grouping index, channel index) to {processor, latest emitted
// sample, subscriber list} (spec.md §4.3). A Cache is not safe for
// concurrent writers on the same (type, grouping, channel) — the
// caller must serialize those, e.g. with a single lane (spec.md §5).
// It is, however, internally synchronized so that distinct channels
// may be submitted from different goroutines without racing on the
// Cache's own bookkeeping.
type Cache struct {
	mu       sync.Mutex
	groups   map[groupKey]groupRegistration
	channels map[groupKey]map[cdata.ChannelIndex]*channelState
	sink     DiagnosticSink
	nextID   uint64
	handles  map[SubscriptionHandle]struct {
		key groupKey
		ch  cdata.ChannelIndex
	}
}

// NewCache returns an empty Cache reporting subscriber failures to
// sink. A nil sink uses NewLogSink(nil).
func NewCache(sink DiagnosticSink) *Cache {
	if sink == nil {
		sink = NewLogSink(nil)
	}
	return &Cache{
		groups:   make(map[groupKey]groupRegistration),
		channels: make(map[groupKey]map[cdata.ChannelIndex]*channelState),
		sink:     sink,
		handles: make(map[SubscriptionHandle]struct {
			key groupKey
			ch  cdata.ChannelIndex
		}),
	}
}

// RegisterGroup registers channelCount channels for (typ, grouping),
// each initialized with the corresponding entry of procs (or Identity
// if procs is shorter than channelCount). It is idempotent only on
// exact-equality of resolution and channelCount; a differing
// re-registration fails with ErrReregistration (spec.md §4.3).
func (c *Cache) RegisterGroup(typ cortical.Type, grouping cdata.GroupingIndex, resolution, channelCount int, procs []Processor) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := groupKey{typ: typ, grouping: grouping}
	reg := groupRegistration{resolution: resolution, channelCount: channelCount}

	if existing, ok := c.groups[key]; ok {
		if existing != reg {
			return fmt.Errorf("stream: group %+v already registered as %+v, got %+v: %w", key, existing, reg, ErrReregistration)
		}
		return nil
	}

	c.groups[key] = reg
	chMap := make(map[cdata.ChannelIndex]*channelState, channelCount)
	for i := 0; i < channelCount; i++ {
		var p Processor = Identity{}
		if i < len(procs) && procs[i] != nil {
			p = procs[i]
		}
		chMap[cdata.ChannelIndex(i)] = &channelState{proc: p}
	}
	c.channels[key] = chMap
	return nil
}

// Submit feeds sample through the channel's processor, stores the
// emitted sample, and invokes subscribers in registration order. Per
// (type, grouping, channel), calls to Submit must be serialized by the
// caller; the sequence observed by the processor and its subscribers
// equals the sequence of Submit calls (spec.md §4.3, §5).
func (c *Cache) Submit(typ cortical.Type, grouping cdata.GroupingIndex, channel cdata.ChannelIndex, sample cdata.Bounded) (cdata.Bounded, error) {
	c.mu.Lock()
	key := groupKey{typ: typ, grouping: grouping}
	chMap, ok := c.channels[key]
	if !ok {
		c.mu.Unlock()
		return cdata.Bounded{}, ErrUnknownChannel
	}
	state, ok := chMap[channel]
	if !ok {
		c.mu.Unlock()
		return cdata.Bounded{}, ErrUnknownChannel
	}

	emitted, err := state.proc.Step(sample)
	if err != nil {
		c.mu.Unlock()
		return cdata.Bounded{}, err
	}
	// The frame is recorded before callbacks fire, so a misbehaving
	// subscriber can never leave the cache holding a stale "latest".
	state.latest = emitted
	state.hasLatest = true
	subs := make([]subscription, len(state.subs))
	copy(subs, state.subs)
	c.mu.Unlock()

	for _, s := range subs {
		c.invokeSubscriber(s.cb, emitted)
	}
	return emitted, nil
}

// invokeSubscriber runs cb synchronously, recovering any panic so a
// failing subscriber cannot corrupt the cache or unwind past Submit
// (spec.md §5, §7).
func (c *Cache) invokeSubscriber(cb Callback, emitted cdata.Bounded) {
	defer func() {
		if r := recover(); r != nil {
			c.sink.Report(fmt.Errorf("stream: subscriber panicked: %v", r))
		}
	}()
	cb(emitted)
}

// Subscribe registers cb to be invoked on every future Submit for
// (typ, grouping, channel), returning a stable handle for later
// Unsubscribe.
func (c *Cache) Subscribe(typ cortical.Type, grouping cdata.GroupingIndex, channel cdata.ChannelIndex, cb Callback) (SubscriptionHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := groupKey{typ: typ, grouping: grouping}
	chMap, ok := c.channels[key]
	if !ok {
		return 0, ErrUnknownChannel
	}
	state, ok := chMap[channel]
	if !ok {
		return 0, ErrUnknownChannel
	}

	c.nextID++
	handle := SubscriptionHandle(c.nextID)
	state.subs = append(state.subs, subscription{handle: handle, cb: cb})
	c.handles[handle] = struct {
		key groupKey
		ch  cdata.ChannelIndex
	}{key: key, ch: channel}
	return handle, nil
}

// Unsubscribe removes a previously registered callback. Unsubscribing
// an unknown or already-removed handle is a no-op.
func (c *Cache) Unsubscribe(handle SubscriptionHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	loc, ok := c.handles[handle]
	if !ok {
		return
	}
	delete(c.handles, handle)
	state := c.channels[loc.key][loc.ch]
	if state == nil {
		return
	}
	for i, s := range state.subs {
		if s.handle == handle {
			state.subs = append(state.subs[:i], state.subs[i+1:]...)
			break
		}
	}
}

// Latest returns the last emitted value for (typ, grouping, channel).
// It fails with ErrUnknownChannel if the channel was never registered,
// and with ErrNeverWritten if it was registered but Submit has not yet
// been called for it.
func (c *Cache) Latest(typ cortical.Type, grouping cdata.GroupingIndex, channel cdata.ChannelIndex) (cdata.Bounded, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := groupKey{typ: typ, grouping: grouping}
	chMap, ok := c.channels[key]
	if !ok {
		return cdata.Bounded{}, ErrUnknownChannel
	}
	state, ok := chMap[channel]
	if !ok {
		return cdata.Bounded{}, ErrUnknownChannel
	}
	if !state.hasLatest {
		return cdata.Bounded{}, ErrNeverWritten
	}
	return state.latest, nil
}

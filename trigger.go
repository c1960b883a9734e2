package hitbox

import (
	"unsafe"

	"github.com/akmonengine/hitbox/actor"
)

const (
	CONTACT_ENTER EventType = iota
	CONTACT_STAY
	CONTACT_EXIT
)

type pairKey struct {
	volumeA *actor.Volume
	volumeB *actor.Volume
}

// makePairKey creates a normalized pair key with consistent ordering
func makePairKey(volumeA, volumeB *actor.Volume) pairKey {
	ptrA := uintptr(unsafe.Pointer(volumeA))
	ptrB := uintptr(unsafe.Pointer(volumeB))

	if ptrB < ptrA {
		volumeA, volumeB = volumeB, volumeA
	}

	return pairKey{volumeA: volumeA, volumeB: volumeB}
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Contact events. The trigger flag of the volumes is not consulted:
// listeners decide what a trigger contact means.
type ContactEnterEvent struct {
	VolumeA *actor.Volume
	VolumeB *actor.Volume
}

func (e ContactEnterEvent) Type() EventType { return CONTACT_ENTER }

type ContactStayEvent struct {
	VolumeA *actor.Volume
	VolumeB *actor.Volume
}

func (e ContactStayEvent) Type() EventType { return CONTACT_STAY }

type ContactExitEvent struct {
	VolumeA *actor.Volume
	VolumeB *actor.Volume
}

func (e ContactExitEvent) Type() EventType { return CONTACT_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Contact tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
	// Pairs of the current frame, in discovery order
	currentOrder []pairKey
	// Pairs of the previous frame, in discovery order
	previousOrder []pairKey
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 64),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

func (e *Events) init() {
	if e.listeners == nil {
		*e = NewEvents()
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.init()
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordContacts stores the colliding pairs of the current frame
func (e *Events) recordContacts(pairs []Pair) {
	e.init()
	for _, p := range pairs {
		key := makePairKey(p.A, p.B)
		if e.currentActivePairs[key] {
			continue
		}
		e.currentActivePairs[key] = true
		e.currentOrder = append(e.currentOrder, pairKey{volumeA: p.A, volumeB: p.B})
	}
}

// processContactEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processContactEvents() {
	// Detect Enter and Stay events
	for _, pair := range e.currentOrder {
		if e.previousActivePairs[makePairKey(pair.volumeA, pair.volumeB)] {
			e.buffer = append(e.buffer, ContactStayEvent{VolumeA: pair.volumeA, VolumeB: pair.volumeB})
		} else {
			e.buffer = append(e.buffer, ContactEnterEvent{VolumeA: pair.volumeA, VolumeB: pair.volumeB})
		}
	}

	// Detect Exit events
	for _, pair := range e.previousOrder {
		key := makePairKey(pair.volumeA, pair.volumeB)
		if e.previousActivePairs[key] && !e.currentActivePairs[key] {
			e.buffer = append(e.buffer, ContactExitEvent{VolumeA: pair.volumeA, VolumeB: pair.volumeB})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
	e.previousOrder, e.currentOrder = e.currentOrder, e.previousOrder[:0]
}

// forget drops the tracked pairs of an unregistered volume, without exit event
func (e *Events) forget(volume *actor.Volume) {
	for pair := range e.previousActivePairs {
		if pair.volumeA == volume || pair.volumeB == volume {
			delete(e.previousActivePairs, pair)
		}
	}
}

// reset drops every tracked pair and pending event, keeping the listeners
func (e *Events) reset() {
	clear(e.previousActivePairs)
	clear(e.currentActivePairs)
	e.previousOrder = e.previousOrder[:0]
	e.currentOrder = e.currentOrder[:0]
	e.buffer = e.buffer[:0]
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.processContactEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}

// Package events implements the explicit event bus called for by spec.md
// §9's redesign flag: "replace the ambient global-mediator singleton with
// a small Context value passed explicitly to each subsystem; UI listeners
// subscribe to typed events." It generalizes the single OnProgress
// callback field on _examples/japaniel-readerer/pkg/ingest.Ingester into a
// typed, multi-subscriber channel bus — one Bus[T] per event type instead
// of a single hub object every subsystem reaches into.
package events

import "sync"

// SubtitleChanged is published whenever the player's current subtitle
// text changes (spec.md §6's player-adapter "subtitle-changed" event).
type SubtitleChanged struct {
	Text      string
	StartTime float64
	EndTime   float64
	Delay     float64
}

// SearchCompleted is published when a dictionary-store search finishes
// and its results have been committed to UI-visible state.
type SearchCompleted struct {
	SearchGeneration int64
	TermCount        int
	KanjiCount       int
}

// NoteAdded is published after a note has been successfully submitted to
// the SRS backend.
type NoteAdded struct {
	Deck       string
	Expression string
}

// DictionaryChanged is published after a dictionary is added, deleted, or
// reordered.
type DictionaryChanged struct {
	Names []string
}

// Bus fans out published values of one event type to every current
// subscriber. The zero value is ready to use.
type Bus[T any] struct {
	mu   sync.Mutex
	subs map[int]chan T
	next int
}

// Subscribe registers a new listener with the given channel buffer size
// and returns its receive channel plus an unsubscribe function. Callers
// must call unsubscribe when done to avoid leaking the channel; Publish
// never blocks on a full subscriber channel — it drops the event for that
// subscriber instead, so slow UI listeners cannot stall publishers.
func (b *Bus[T]) Subscribe(buffer int) (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs == nil {
		b.subs = map[int]chan T{}
	}
	id := b.next
	b.next++
	ch := make(chan T, buffer)
	b.subs[id] = ch

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if c, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(c)
		}
	}
	return ch, unsubscribe
}

// Publish delivers v to every current subscriber, non-blocking.
func (b *Bus[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- v:
		default:
		}
	}
}

// Hub bundles the event buses this core publishes to, passed explicitly
// to each subsystem instead of reached via a singleton.
type Hub struct {
	Subtitle   Bus[SubtitleChanged]
	Search     Bus[SearchCompleted]
	NoteAdded  Bus[NoteAdded]
	Dictionary Bus[DictionaryChanged]
}

// NewHub constructs an empty Hub ready for subscription.
func NewHub() *Hub {
	return &Hub{}
}

package records

import (
	"log"
	"sync"

	"github.com/voxnote/study-api/internal/models"
)

// WatchEvent is one delivery on a watch channel: a record snapshot, or
// the deletion marker that ends the watch. A channel that closes
// without a Deleted marker was cancelled; the record still exists.
type WatchEvent struct {
	Record  models.TranscriptRecord
	Deleted bool
}

// watchHub fans record snapshots out to per-record subscribers.
// Subscribers with a full buffer miss intermediate snapshots but always
// receive a later one, so the final state is never lost.
type watchHub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]chan WatchEvent
}

func newWatchHub() *watchHub {
	return &watchHub{
		subs: make(map[string]map[int]chan WatchEvent),
	}
}

func watchKey(userID, recordID string) string {
	return userID + "/" + recordID
}

// subscribe registers a new subscriber for a record and returns its
// channel together with a cancel function
func (h *watchHub) subscribe(userID, recordID string) (chan WatchEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := watchKey(userID, recordID)
	id := h.nextID
	h.nextID++

	ch := make(chan WatchEvent, 8)
	if h.subs[key] == nil {
		h.subs[key] = make(map[int]chan WatchEvent)
	}
	h.subs[key][id] = ch

	cancel := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.subs[key]; ok {
			if sub, ok := set[id]; ok {
				delete(set, id)
				close(sub)
			}
			if len(set) == 0 {
				delete(h.subs, key)
			}
		}
	}

	return ch, cancel
}

// sendInitial delivers the first snapshot to a subscription if it is
// still registered. It reports false when the subscription was already
// dropped, which means the record was deleted mid-subscribe.
func (h *watchHub) sendInitial(userID, recordID string, ch chan WatchEvent, record models.TranscriptRecord) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, sub := range h.subs[watchKey(userID, recordID)] {
		if sub == ch {
			forceSend(sub, WatchEvent{Record: record})
			return true
		}
	}
	return false
}

// publish delivers a snapshot to every subscriber of the record
func (h *watchHub) publish(record models.TranscriptRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := watchKey(record.UserID, record.ID)
	for _, ch := range h.subs[key] {
		select {
		case ch <- WatchEvent{Record: record}:
		default:
			log.Printf("[DEBUG] Dropping snapshot for slow watcher on record %s", record.ID)
		}
	}
}

// dropAll ends every subscription for a record with a deletion marker,
// used on delete
func (h *watchHub) dropAll(userID, recordID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	key := watchKey(userID, recordID)
	for id, ch := range h.subs[key] {
		delete(h.subs[key], id)
		forceSend(ch, WatchEvent{Deleted: true})
		close(ch)
	}
	delete(h.subs, key)
}

// forceSend delivers ev even when the buffer is full by evicting the
// oldest pending event. Callers must hold h.mu, which makes them the
// only sender.
func forceSend(ch chan WatchEvent, ev WatchEvent) {
	for {
		select {
		case ch <- ev:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

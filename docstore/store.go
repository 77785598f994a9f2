//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_docstore.go -package=mocks

// Package docstore exposes the persistence substrate as a hierarchical
// document tree: whole JSON documents addressed by path, read and
// written wholesale, with live observation of individual paths.
//
// There is no multi-path atomicity. Callers composing writes across
// several paths get no rollback; partial failures leave earlier writes
// in place.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dgraph-io/badger/v4"

	errs "messenger-lab/errors"
)

// ErrNotFound reports that no document exists at the requested path.
var ErrNotFound = fmt.Errorf("document not found")

type IStore interface {
	Read(path string, out any) error
	Write(path string, doc any) error
	Update(path string, fn UpdateFunc) error
	Watch(ctx context.Context, path string) <-chan []byte
}

// UpdateFunc receives the current raw document (nil when absent) and
// returns the replacement document to persist.
type UpdateFunc func(raw []byte, found bool) (any, error)

// Store persists documents in BadgerDB under a "doc:" prefix.
//
// Mutators of the same path serialize on a per-path lock, so an
// Update's read-modify-write cycle can never interleave with another
// writer of the same document. Writers of distinct paths proceed
// concurrently.
type Store struct {
	db  *badger.DB
	log *slog.Logger

	mu       sync.Mutex
	locks    map[string]*sync.Mutex
	watchers map[string][]chan []byte
}

func NewStore(db *badger.DB, log *slog.Logger) *Store {
	return &Store{
		db:       db,
		log:      log,
		locks:    make(map[string]*sync.Mutex),
		watchers: make(map[string][]chan []byte),
	}
}

func key(path string) []byte {
	return []byte("doc:" + path)
}

// Read unmarshals the document at path into out.
func (s *Store) Read(path string, out any) error {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(path))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append(raw, val...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
	}
	return nil
}

// Write replaces the document at path wholesale.
func (s *Store) Write(path string, doc any) error {
	lock := s.pathLock(path)
	lock.Lock()
	defer lock.Unlock()
	return s.write(path, doc)
}

// Update runs a read-entire-document-then-write-entire-document cycle
// under the path lock. This is the only safe way to mutate a document
// that other operations may also rewrite.
func (s *Store) Update(path string, fn UpdateFunc) error {
	lock := s.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	var raw []byte
	found := true
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(path))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append(raw, val...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		found = false
	} else if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStoreReadFailed, err)
	}

	doc, err := fn(raw, found)
	if err != nil {
		return err
	}
	return s.write(path, doc)
}

func (s *Store) write(path string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStoreWriteFailed, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(path), raw)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrStoreWriteFailed, err)
	}
	s.notify(path, raw)
	return nil
}

// Watch delivers the full document on subscription and again after
// every write to path. Delivery is best effort: a slow consumer sees
// the latest document, intermediate versions may be coalesced. The
// channel closes when ctx is done.
func (s *Store) Watch(ctx context.Context, path string) <-chan []byte {
	ch := make(chan []byte, 1)

	// Snapshot and registration share s.mu with notify: a write racing
	// the subscription is either visible in the snapshot or delivered
	// through notify afterwards, never silently dropped.
	s.mu.Lock()
	var snapshot []byte
	_ = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(path))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			snapshot = append(snapshot, val...)
			return nil
		})
	})
	if snapshot != nil {
		ch <- snapshot
	}
	s.watchers[path] = append(s.watchers[path], ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		chans := s.watchers[path]
		for i, c := range chans {
			if c == ch {
				s.watchers[path] = append(chans[:i], chans[i+1:]...)
				break
			}
		}
		if len(s.watchers[path]) == 0 {
			delete(s.watchers, path)
		}
		s.mu.Unlock()
		close(ch)
	}()

	return ch
}

func (s *Store) notify(path string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.watchers[path] {
		// Latest document wins, stale versions are dropped.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- raw:
		default:
			s.log.Debug("Watcher notification lost", "path", path)
		}
	}
}

func (s *Store) pathLock(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[path]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[path] = lock
	}
	return lock
}

// Package session persists client state that must survive restarts: the
// in-flight reservation slot. Values round-trip through JSON inside an
// embedded badger store; a missing or corrupt value degrades to the
// caller-supplied default instead of failing.
package session

import (
	"encoding/json"
	"errors"
	"sync"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/sirupsen/logrus"
)

type subscription struct {
	id     int
	client *Client
	fn     func()
}

// Store is the durable key-value slot shared by every client handle.
type Store struct {
	db *badger.DB

	mu     sync.Mutex
	nextID int
	subs   map[string][]subscription
}

// Client is one handle on the store, the analog of one browser tab. A
// write made through a client notifies subscribers of every other
// client but never the writer's own, so a handle reacting to remote
// changes cannot feed back on itself.
type Client struct {
	store *Store
}

// Open creates or reopens the store at path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	database, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:   database,
		subs: map[string][]subscription{},
	}, nil
}

// OpenInMemory backs the store with badger's in-memory mode, for tests.
func OpenInMemory() (*Store, error) {
	database, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, err
	}
	return &Store{
		db:   database,
		subs: map[string][]subscription{},
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) NewClient() *Client {
	return &Client{store: s}
}

// Subscribe registers fn to run after any other client writes key.
// The returned function removes the subscription.
func (c *Client) Subscribe(key string, fn func()) func() {
	s := c.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs[key] = append(s.subs[key], subscription{id: id, client: c, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		subs := s.subs[key]
		for i, sub := range subs {
			if sub.id == id {
				s.subs[key] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

func (s *Store) notify(key string, writer *Client) {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs[key]))
	for _, sub := range s.subs[key] {
		if sub.client != writer {
			fns = append(fns, sub.fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Read returns the stored value for key, or def when the key is absent
// or the stored bytes do not decode. Storage trouble is logged and
// degrades to def; it never surfaces to the caller.
func Read[T any](c *Client, key string, def T) T {
	var raw []byte
	err := c.store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			logrus.Warnf("session: reading key %q: %v", key, err)
		}
		return def
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logrus.Warnf("session: corrupt value for key %q, using default: %v", key, err)
		return def
	}
	return value
}

// Write persists value under key and notifies other clients' subscribers.
func Write[T any](c *Client, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	err = c.store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), raw)
	})
	if err != nil {
		return err
	}
	c.store.notify(key, c)
	return nil
}

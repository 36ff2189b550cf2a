/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package tablestore

import (
	"fmt"
	"sync"

	"github.com/suparena/tablestore/datastore"
)

// Storage is a higher-level interface that manages a collection of named
// TableStore handles. Applications talking to several storage accounts
// register one handle per account (for example, "primary" or "analytics").
type Storage interface {
	// Register stores the provided TableStore under the given key.
	Register(key string, store datastore.TableStore) error
	// Get retrieves the registered TableStore for a given key.
	Get(key string) (datastore.TableStore, error)
	// Remove drops the registration for a given key.
	Remove(key string) error
	// List returns all registered keys.
	List() []string
}

// storageManager is a thread-safe implementation of the Storage interface.
type storageManager struct {
	mu     sync.RWMutex
	stores map[string]datastore.TableStore
}

// NewStorageManager creates and returns a new Storage implementation.
func NewStorageManager() Storage {
	return &storageManager{
		stores: make(map[string]datastore.TableStore),
	}
}

// Register stores the provided TableStore under the given key.
func (sm *storageManager) Register(key string, store datastore.TableStore) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; exists {
		return fmt.Errorf("table store with key %q already registered", key)
	}
	sm.stores[key] = store
	return nil
}

// Get retrieves the TableStore associated with the given key.
func (sm *storageManager) Get(key string) (datastore.TableStore, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	store, exists := sm.stores[key]
	if !exists {
		return nil, fmt.Errorf("table store with key %q not found", key)
	}
	return store, nil
}

// Remove deletes the registration for the given key.
func (sm *storageManager) Remove(key string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.stores[key]; !exists {
		return fmt.Errorf("table store with key %q not found", key)
	}
	delete(sm.stores, key)
	return nil
}

// List returns all registered keys.
func (sm *storageManager) List() []string {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	keys := make([]string, 0, len(sm.stores))
	for k := range sm.stores {
		keys = append(keys, k)
	}
	return keys
}

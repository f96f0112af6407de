// Package storage abstracts the durable key-value store components persist
// their state to.
package storage

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned by KV.Get when there is no such key.
var ErrNotFound = errors.New("no such key")

// ErrUnknownDriver is returned by Open for an unregistered driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// KV is a string key-value store.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// drivers maps a driver name to its constructor. Backends register
// themselves from init so build-constrained ones simply don't appear.
var drivers = map[string]func(path string) (KV, error){}

// Open opens the store served by driver at path. The path is ignored by
// drivers that have no backing file.
func Open(driver, path string) (KV, error) {
	open, ok := drivers[driver]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownDriver, driver, Drivers())
	}
	kv, err := open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s store %q: %w", driver, path, err)
	}
	return kv, nil
}

// Drivers lists the registered driver names.
func Drivers() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

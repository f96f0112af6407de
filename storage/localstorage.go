//go:build js || wasm

package storage

import "syscall/js"

func init() {
	drivers["local"] = func(string) (KV, error) { return NewLocalStorage(), nil }
}

// LocalStorage is the browser's window.localStorage.
type LocalStorage struct {
	ls js.Value
}

func NewLocalStorage() *LocalStorage {
	return &LocalStorage{ls: js.Global().Get("localStorage")}
}

func (s *LocalStorage) Get(key string) (string, error) {
	v := s.ls.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return "", ErrNotFound
	}
	return v.String(), nil
}

func (s *LocalStorage) Set(key, value string) error {
	s.ls.Call("setItem", key, value)
	return nil
}

func (s *LocalStorage) Delete(key string) error {
	s.ls.Call("removeItem", key)
	return nil
}

func (s *LocalStorage) Close() error { return nil }

package model

import "errors"

// Sentinel errors for the proxy registry.
var (
	ErrProxyExists    = errors.New("proxy already registered")
	ErrEmptyProxyName = errors.New("proxy name is empty")
)

// Copyright 2024 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package aeatclient

import (
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrUnknownMappingKey is returned when no endpoint has been registered
// under the requested mapping key.
var ErrUnknownMappingKey = errors.New("unknown AEAT mapping key")

// Params are the parameters needed to bind a SOAP service
type Params struct {
	WSDL     string
	PortName string
	Address  string
}

// An Endpoint describes an AEAT web service in both test and production
// environments.
type Endpoint struct {
	WSDL        string
	PortName    string
	TestAddress string
	ProdAddress string
}

// Params returns the connection parameters of this endpoint for the given
// environment.
func (e Endpoint) Params(test bool) Params {
	address := e.ProdAddress
	if test {
		address = e.TestAddress
	}
	return Params{
		WSDL:     e.WSDL,
		PortName: e.PortName,
		Address:  address,
	}
}

var registry = struct {
	sync.RWMutex
	endpoints map[string]Endpoint
}{
	endpoints: make(map[string]Endpoint),
}

// RegisterEndpoint makes the given endpoint available under key.
// Registering twice the same key overrides the previous endpoint.
func RegisterEndpoint(key string, endpoint Endpoint) {
	registry.Lock()
	defer registry.Unlock()
	registry.endpoints[key] = endpoint
}

// GetEndpoint returns the endpoint registered under key
func GetEndpoint(key string) (Endpoint, error) {
	registry.RLock()
	defer registry.RUnlock()
	endpoint, ok := registry.endpoints[key]
	if !ok {
		return Endpoint{}, errors.Wrapf(ErrUnknownMappingKey, "%q", key)
	}
	return endpoint, nil
}

// MappingKeys returns the sorted list of registered keys
func MappingKeys() []string {
	registry.RLock()
	defer registry.RUnlock()
	res := make([]string, 0, len(registry.endpoints))
	for k := range registry.endpoints {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

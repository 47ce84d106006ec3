// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package services

import (
	"fmt"
	"reflect"
)

// Logger is the logger used by the service registry.
type Logger interface {
	Debug(s string)
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Service must be implemented by all Services
type Service interface {
	Start() error
	Stop() error
}

// ServiceRegistry starts and stops the services of a command.
// Services are started in registration order and stopped in reverse order.
type ServiceRegistry struct {
	services     map[reflect.Type]Service
	serviceTypes []reflect.Type
	started      int
	logger       Logger
}

// NewServiceRegistry creates an empty registry
func NewServiceRegistry(logger Logger) *ServiceRegistry {
	return &ServiceRegistry{
		services: make(map[reflect.Type]Service),
		logger:   logger,
	}
}

// RegisterService stores a new service in the registry, ignoring
// services of an already registered type.
func (s *ServiceRegistry) RegisterService(service Service) {
	kind := reflect.TypeOf(service)
	if _, exists := s.services[kind]; exists {
		s.logger.Warnf("Tried to add service type %s that has already been seen", kind)
		return
	}
	s.services[kind] = service
	s.serviceTypes = append(s.serviceTypes, kind)
}

// StartAll starts all registered services. If a service fails to start,
// the services already started are stopped and the error is returned.
func (s *ServiceRegistry) StartAll() error {
	s.logger.Infof("Starting Services: %v", s.serviceTypes)
	for _, typ := range s.serviceTypes[s.started:] {
		s.logger.Debugf("Starting service %s", typ)
		err := s.services[typ].Start()
		if err != nil {
			s.StopAll()
			return fmt.Errorf("starting service %s: %w", typ, err)
		}
		s.started++
	}
	s.logger.Debug("All Services started.")
	return nil
}

// StopAll stops all started services, in reverse start order.
func (s *ServiceRegistry) StopAll() {
	s.logger.Infof("Stopping Services: %v", s.serviceTypes[:s.started])
	for i := s.started - 1; i >= 0; i-- {
		typ := s.serviceTypes[i]
		s.logger.Debugf("Stopping service %s", typ)
		err := s.services[typ].Stop()
		if err != nil {
			s.logger.Errorf("Error stopping service %s: %s", typ, err)
		}
	}
	s.started = 0
	s.logger.Debug("All Services stopped.")
}

// Get retrieves the registered service of the type of srvc.
func (s *ServiceRegistry) Get(srvc interface{}) Service {
	if reflect.TypeOf(srvc).Kind() != reflect.Ptr {
		s.logger.Warnf("expected a pointer but got %T", srvc)
		return nil
	}
	e := reflect.ValueOf(srvc)

	if s, ok := s.services[e.Type()]; ok {
		return s
	}
	s.logger.Warnf("unknown service type %T", srvc)
	return nil
}

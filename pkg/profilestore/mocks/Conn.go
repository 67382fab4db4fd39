// Code generated by mockery v1.0.0
package mocks

import (
	mock "github.com/stretchr/testify/mock"

	profilestore "github.com/blast007/wifi-eap-profiles/pkg/profilestore"
)

// Conn is an autogenerated mock type for the Conn type
type Conn struct {
	mock.Mock
}

// Close provides a mock function with given fields:
func (_m *Conn) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Create provides a mock function with given fields: props
func (_m *Conn) Create(props profilestore.Properties) (string, error) {
	ret := _m.Called(props)

	var r0 string
	if rf, ok := ret.Get(0).(func(profilestore.Properties) string); ok {
		r0 = rf(props)
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(profilestore.Properties) error); ok {
		r1 = rf(props)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// List provides a mock function with given fields:
func (_m *Conn) List() ([]profilestore.Record, error) {
	ret := _m.Called()

	var r0 []profilestore.Record
	if rf, ok := ret.Get(0).(func() []profilestore.Record); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]profilestore.Record)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func() error); ok {
		r1 = rf()
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Remove provides a mock function with given fields: id
func (_m *Conn) Remove(id string) error {
	ret := _m.Called(id)

	var r0 error
	if rf, ok := ret.Get(0).(func(string) error); ok {
		r0 = rf(id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Code generated by mockery v1.0.0
package mocks

import (
	mock "github.com/stretchr/testify/mock"

	profilestore "github.com/blast007/wifi-eap-profiles/pkg/profilestore"
)

// Store is an autogenerated mock type for the Store type
type Store struct {
	mock.Mock
}

// Open provides a mock function with given fields:
func (_m *Store) Open() (profilestore.Conn, error) {
	ret := _m.Called()

	var r0 profilestore.Conn
	if rf, ok := ret.Get(0).(func() profilestore.Conn); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(profilestore.Conn)
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

// Code generated by mockery v1.0.0
package mocks

import mock "github.com/stretchr/testify/mock"

// Handle is an autogenerated mock type for the Handle type
type Handle struct {
	mock.Mock
}

// Release provides a mock function with given fields:
func (_m *Handle) Release() {
	_m.Called()
}

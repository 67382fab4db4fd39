// Code generated by mockery v1.0.0
package mocks

import (
	mock "github.com/stretchr/testify/mock"

	trustgroup "github.com/blast007/wifi-eap-profiles/pkg/trustgroup"
)

// Service is an autogenerated mock type for the Service type
type Service struct {
	mock.Mock
}

// CreateApplicationGroup provides a mock function with given fields: groupName, anchor
func (_m *Service) CreateApplicationGroup(groupName *string, anchor []byte) (trustgroup.Handle, trustgroup.Status) {
	ret := _m.Called(groupName, anchor)

	var r0 trustgroup.Handle
	if rf, ok := ret.Get(0).(func(*string, []byte) trustgroup.Handle); ok {
		r0 = rf(groupName, anchor)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(trustgroup.Handle)
		}
	}

	var r1 trustgroup.Status
	if rf, ok := ret.Get(1).(func(*string, []byte) trustgroup.Status); ok {
		r1 = rf(groupName, anchor)
	} else {
		r1 = ret.Get(1).(trustgroup.Status)
	}

	return r0, r1
}

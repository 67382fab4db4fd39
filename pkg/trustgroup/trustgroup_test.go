package trustgroup_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/blast007/wifi-eap-profiles/pkg/trustgroup"
	"github.com/blast007/wifi-eap-profiles/pkg/trustgroup/mocks"
)

func TestCreateApplicationTrustGroup(t *testing.T) {
	name := "corp-radius"
	anchor := []byte{0x30, 0x82}

	handle := &mocks.Handle{}
	handle.On("Release").Return().Once()

	svc := &mocks.Service{}
	svc.On("CreateApplicationGroup", &name, anchor).Return(handle, trustgroup.StatusSuccess)

	ref, err := trustgroup.NewGateway(svc).CreateApplicationTrustGroup(&name, anchor)
	require.NoError(t, err)

	got, ok := ref.Name()
	assert.True(t, ok)
	assert.Equal(t, "corp-radius", got)
	assert.Same(t, handle, ref.Handle())

	// The reference keeps its own copy of the name
	name = "changed"
	got, _ = ref.Name()
	assert.Equal(t, "corp-radius", got)

	ref.Release()
	ref.Release()
	handle.AssertNumberOfCalls(t, "Release", 1)
	svc.AssertExpectations(t)
}

func TestCreateApplicationTrustGroupWithoutArguments(t *testing.T) {
	svc := &mocks.Service{}
	svc.On("CreateApplicationGroup", (*string)(nil), []byte(nil)).Return(nil, trustgroup.StatusSuccess)

	ref, err := trustgroup.NewGateway(svc).CreateApplicationTrustGroup(nil, nil)
	require.NoError(t, err)

	_, ok := ref.Name()
	assert.False(t, ok)
	assert.NotPanics(t, ref.Release)
}

func TestCreateApplicationTrustGroupStatus(t *testing.T) {
	for _, status := range []trustgroup.Status{-25299, -50, 1, -34018} {
		svc := &mocks.Service{}
		svc.On("CreateApplicationGroup", mock.Anything, mock.Anything).Return(nil, status)

		ref, err := trustgroup.NewGateway(svc).CreateApplicationTrustGroup(nil, []byte{1})
		assert.Nil(t, ref)

		var svcErr *trustgroup.ServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, status, svcErr.Code)
	}
}

func TestCreateApplicationTrustGroupFailureReleasesHandle(t *testing.T) {
	handle := &mocks.Handle{}
	handle.On("Release").Return().Once()

	svc := &mocks.Service{}
	svc.On("CreateApplicationGroup", mock.Anything, mock.Anything).Return(handle, trustgroup.Status(-36))

	_, err := trustgroup.NewGateway(svc).CreateApplicationTrustGroup(nil, nil)
	assert.EqualError(t, err, "trust group service failed with status -36")
	handle.AssertExpectations(t)
}

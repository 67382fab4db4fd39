// Package trustgroup creates application trust groups anchored on a
// certificate, through an external trust group service.
package trustgroup

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Status is a platform status code returned by the trust group service.
// Zero is success; other values are platform specific.
type Status int32

// StatusSuccess is the status of a successful call
const StatusSuccess Status = 0

// Handle is an application group reference allocated by the service
type Handle interface {
	Release()
}

// Service is the platform trust group service. groupName and anchor are
// optional; anchor holds a DER encoded certificate.
type Service interface {
	CreateApplicationGroup(groupName *string, anchor []byte) (Handle, Status)
}

// ServiceError carries a non-zero status returned by the service
type ServiceError struct {
	Code Status
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("trust group service failed with status %d", e.Code)
}

// Ref is an application trust group reference owned by the caller, who
// must Release it.
type Ref struct {
	name   *string
	handle Handle
	once   sync.Once
}

// Name returns the group name the reference was created with, if any
func (r *Ref) Name() (string, bool) {
	if r.name == nil {
		return "", false
	}
	return *r.name, true
}

// Handle returns the underlying service handle
func (r *Ref) Handle() Handle {
	return r.handle
}

// Release frees the reference. Subsequent calls do nothing.
func (r *Ref) Release() {
	r.once.Do(func() {
		if r.handle != nil {
			r.handle.Release()
		}
	})
}

// Gateway forwards trust group creation to a Service
type Gateway struct {
	svc Service
	log *zap.Logger
}

// Option configures a Gateway
type Option func(*Gateway)

// WithLogger sets the gateway logger
func WithLogger(log *zap.Logger) Option {
	return func(g *Gateway) { g.log = log.Named("trustgroup") }
}

// NewGateway creates a gateway over svc
func NewGateway(svc Service, opts ...Option) *Gateway {
	g := &Gateway{svc: svc, log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateApplicationTrustGroup asks the service for an application group
// named groupName anchored on the DER certificate anchor. A non-zero status
// is returned verbatim in a *ServiceError.
func (g *Gateway) CreateApplicationTrustGroup(groupName *string, anchor []byte) (*Ref, error) {
	handle, status := g.svc.CreateApplicationGroup(groupName, anchor)
	if status != StatusSuccess {
		if handle != nil {
			handle.Release()
		}
		g.log.Debug("trust group creation failed", zap.Int32("status", int32(status)))
		return nil, &ServiceError{Code: status}
	}

	ref := &Ref{handle: handle}
	if groupName != nil {
		name := *groupName
		ref.name = &name
	}
	return ref, nil
}

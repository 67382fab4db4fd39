package profilestore

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/blast007/wifi-eap-profiles/pkg/eap"
)

// Gateway lists, finds, creates and removes profiles in a Store. It holds
// no state between calls; every call opens and closes its own connection.
type Gateway struct {
	store              Store
	log                *zap.Logger
	allowDuplicateSSID bool
}

// Option configures a Gateway
type Option func(*Gateway)

// WithLogger sets the logger used for warnings and store activity
func WithLogger(log *zap.Logger) Option {
	return func(g *Gateway) { g.log = log.Named("profilestore") }
}

// WithDuplicateSSIDs controls whether Create accepts a profile for an SSID
// that already has one. Duplicates are allowed by default.
func WithDuplicateSSIDs(allow bool) Option {
	return func(g *Gateway) { g.allowDuplicateSSID = allow }
}

// NewGateway creates a gateway over store
func NewGateway(store Store, opts ...Option) *Gateway {
	g := &Gateway{
		store:              store,
		log:                zap.NewNop(),
		allowDuplicateSSID: true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Gateway) open() (Conn, error) {
	conn, err := g.store.Open()
	if err != nil {
		return nil, storeError(ErrStoreUnavailable, err)
	}
	return conn, nil
}

func (g *Gateway) close(conn Conn) {
	if err := conn.Close(); err != nil {
		g.log.Warn("failed to close profile store connection", zap.Error(err))
	}
}

func (g *Gateway) list(conn Conn) ([]Record, []*eap.Profile, error) {
	records, err := conn.List()
	if err != nil {
		return nil, nil, storeError(ErrStoreUnavailable, err)
	}
	profiles := make([]*eap.Profile, 0, len(records))
	for _, rec := range records {
		p, err := FromRecord(rec)
		if err != nil {
			return nil, nil, storeError(ErrStoreUnavailable, errors.Wrapf(err, "record %s", rec.ID))
		}
		profiles = append(profiles, p)
	}
	return records, profiles, nil
}

// List returns every profile in the store, or an empty slice when there are none
func (g *Gateway) List() ([]*eap.Profile, error) {
	conn, err := g.open()
	if err != nil {
		return nil, err
	}
	defer g.close(conn)

	_, profiles, err := g.list(conn)
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// Find returns the first profile for ssid, or nil if there is none
func (g *Gateway) Find(ssid string) (*eap.Profile, error) {
	conn, err := g.open()
	if err != nil {
		return nil, err
	}
	defer g.close(conn)

	_, profiles, err := g.list(conn)
	if err != nil {
		return nil, err
	}
	for _, p := range profiles {
		if p.SSID != nil && *p.SSID == ssid {
			return p, nil
		}
	}
	return nil, nil
}

// Create validates p and stores it, returning the identifier assigned by the
// store. The store is not contacted when validation fails. p itself is not
// modified.
func (g *Gateway) Create(p *eap.Profile) (string, error) {
	if p == nil {
		return "", errors.Wrap(eap.ErrInvalidProfile, "profile is nil")
	}
	if p.ID != nil {
		return "", errors.Wrap(eap.ErrInvalidProfile, "profile id is assigned by the store")
	}
	if err := p.Validate(); err != nil {
		return "", err
	}
	for _, w := range p.Warnings() {
		g.log.Warn(w, zap.String("profile", p.DisplayName()))
	}

	conn, err := g.open()
	if err != nil {
		return "", err
	}
	defer g.close(conn)

	if !g.allowDuplicateSSID && p.SSID != nil {
		_, existing, err := g.list(conn)
		if err != nil {
			return "", err
		}
		for _, e := range existing {
			if e.SSID != nil && *e.SSID == *p.SSID {
				return "", errors.Wrapf(ErrStoreRejected, "a profile for ssid %q already exists", *p.SSID)
			}
		}
	}

	id, err := conn.Create(ToProperties(p))
	if err != nil {
		return "", storeError(ErrStoreRejected, err)
	}

	g.log.Info("created profile", zap.String("id", id), zap.String("profile", p.DisplayName()))
	return id, nil
}

// Remove deletes the profile target resolves to. A target with an ID
// matches by ID; a target without one matches the first profile with the
// same SSID.
func (g *Gateway) Remove(target *eap.Profile) error {
	if target == nil || (target.ID == nil && target.SSID == nil) {
		return errors.Wrap(ErrNotFound, "removal target has neither id nor ssid")
	}

	conn, err := g.open()
	if err != nil {
		return err
	}
	defer g.close(conn)

	records, profiles, err := g.list(conn)
	if err != nil {
		return err
	}

	id, ok := resolve(target, records, profiles)
	if !ok {
		return errors.Wrapf(ErrNotFound, "no profile matches %s", describeTarget(target))
	}

	if err := conn.Remove(id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return errors.Wrapf(err, "profile %s", id)
		}
		return storeError(ErrStoreRejected, err)
	}

	g.log.Info("removed profile", zap.String("id", id))
	return nil
}

// RemoveByID deletes the profile with the given identifier
func (g *Gateway) RemoveByID(id string) error {
	return g.Remove(&eap.Profile{ID: &id})
}

// RemoveBySSID deletes the first profile for ssid
func (g *Gateway) RemoveBySSID(ssid string) error {
	return g.Remove(&eap.Profile{SSID: &ssid})
}

func resolve(target *eap.Profile, records []Record, profiles []*eap.Profile) (string, bool) {
	for i, p := range profiles {
		candidate := p
		if target.ID == nil {
			candidate = p.Clone()
			candidate.ID = nil
		}
		if target.SameTarget(candidate) {
			return records[i].ID, true
		}
	}
	return "", false
}

func describeTarget(target *eap.Profile) string {
	if target.ID != nil {
		return "id " + *target.ID
	}
	return "ssid " + *target.SSID
}

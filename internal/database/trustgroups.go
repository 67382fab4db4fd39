package database

import (
	"sync"

	"go.uber.org/zap"

	"github.com/blast007/wifi-eap-profiles/pkg/eap"
	"github.com/blast007/wifi-eap-profiles/pkg/trustgroup"
)

// Status codes returned by TrustGroupService. The values follow the
// Security framework codes host applications already know.
const (
	StatusParam         trustgroup.Status = -50
	StatusIO            trustgroup.Status = -36
	StatusDuplicateItem trustgroup.Status = -25299
)

// TrustGroupService implements trustgroup.Service on the database
type TrustGroupService struct {
	db *Database

	mu      sync.Mutex
	handles map[*trustGroupHandle]struct{}
}

// TrustGroups returns the trust group service backed by this database
func (d *Database) TrustGroups() *TrustGroupService {
	return &TrustGroupService{
		db:      d,
		handles: map[*trustGroupHandle]struct{}{},
	}
}

type trustGroupHandle struct {
	svc     *TrustGroupService
	groupID uint
}

func (h *trustGroupHandle) Release() {
	h.svc.mu.Lock()
	defer h.svc.mu.Unlock()
	delete(h.svc.handles, h)
}

// GroupID returns the database id of the trust group
func (h *trustGroupHandle) GroupID() uint {
	return h.groupID
}

// OpenHandles returns the number of handles not yet released
func (s *TrustGroupService) OpenHandles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// CreateApplicationGroup stores a trust group. A named group must not exist
// yet; an anchor must be a parseable DER certificate.
func (s *TrustGroupService) CreateApplicationGroup(groupName *string, anchor []byte) (trustgroup.Handle, trustgroup.Status) {
	group := TrustGroup{Name: groupName}

	if anchor != nil {
		label, err := eap.CertificateLabel(anchor)
		if err != nil {
			s.db.log.Debug("rejected trust group anchor", zap.Error(err))
			return nil, StatusParam
		}
		fingerprint := eap.Fingerprint(anchor)
		group.AnchorLabel = &label
		group.AnchorFingerprint = &fingerprint
		group.AnchorDER = anchor
	}

	if groupName != nil {
		var count int
		if err := s.db.DB.Model(&TrustGroup{}).Where("name = ?", *groupName).Count(&count).Error; err != nil {
			s.db.log.Error("failed to look up trust group", zap.Error(err))
			return nil, StatusIO
		}
		if count > 0 {
			return nil, StatusDuplicateItem
		}
	}

	if err := s.db.DB.Create(&group).Error; err != nil {
		s.db.log.Error("failed to create trust group", zap.Error(err))
		return nil, StatusIO
	}

	h := &trustGroupHandle{svc: s, groupID: group.ID}
	s.mu.Lock()
	s.handles[h] = struct{}{}
	s.mu.Unlock()

	s.db.log.Info("created trust group", zap.Uint("id", group.ID), zap.Stringp("name", groupName))
	return h, trustgroup.StatusSuccess
}

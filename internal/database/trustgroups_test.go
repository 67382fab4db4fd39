package database

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blast007/wifi-eap-profiles/internal/testutils"
	"github.com/blast007/wifi-eap-profiles/pkg/eap"
	"github.com/blast007/wifi-eap-profiles/pkg/trustgroup"
)

func TestTrustGroupCreate(t *testing.T) {
	db := openTestDB(t)
	svc := db.TrustGroups()
	g := trustgroup.NewGateway(svc)

	anchor := testutils.Certificate(t, "Corp Root CA")
	ref, err := g.CreateApplicationTrustGroup(eap.String("corp"), anchor)
	require.NoError(t, err)
	assert.Equal(t, 1, svc.OpenHandles())

	var group TrustGroup
	require.NoError(t, db.DB.Where("name = ?", "corp").First(&group).Error)
	assert.Equal(t, "Corp Root CA", *group.AnchorLabel)
	assert.Equal(t, eap.Fingerprint(anchor), *group.AnchorFingerprint)
	assert.Equal(t, anchor, group.AnchorDER)

	h, ok := ref.Handle().(*trustGroupHandle)
	require.True(t, ok)
	assert.Equal(t, group.ID, h.GroupID())

	ref.Release()
	ref.Release()
	assert.Zero(t, svc.OpenHandles())
}

func TestTrustGroupUnnamed(t *testing.T) {
	db := openTestDB(t)
	g := trustgroup.NewGateway(db.TrustGroups())

	for i := 0; i < 2; i++ {
		ref, err := g.CreateApplicationTrustGroup(nil, nil)
		require.NoError(t, err)
		ref.Release()
	}

	var count int
	require.NoError(t, db.DB.Model(&TrustGroup{}).Count(&count).Error)
	assert.Equal(t, 2, count)
}

func TestTrustGroupDuplicateName(t *testing.T) {
	db := openTestDB(t)
	svc := db.TrustGroups()
	g := trustgroup.NewGateway(svc)

	ref, err := g.CreateApplicationTrustGroup(eap.String("corp"), nil)
	require.NoError(t, err)
	defer ref.Release()

	_, err = g.CreateApplicationTrustGroup(eap.String("corp"), nil)
	var svcErr *trustgroup.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, StatusDuplicateItem, svcErr.Code)
	assert.Equal(t, 1, svc.OpenHandles())
}

func TestTrustGroupBadAnchor(t *testing.T) {
	db := openTestDB(t)
	g := trustgroup.NewGateway(db.TrustGroups())

	_, err := g.CreateApplicationTrustGroup(eap.String("corp"), []byte("not a certificate"))
	var svcErr *trustgroup.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, StatusParam, svcErr.Code)
}

func TestTrustGroupClosedDatabase(t *testing.T) {
	db := openTestDB(t)
	svc := db.TrustGroups()
	require.NoError(t, db.Close())

	_, status := svc.CreateApplicationGroup(eap.String("corp"), nil)
	assert.Equal(t, StatusIO, status)
}

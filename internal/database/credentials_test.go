package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blast007/wifi-eap-profiles/pkg/eap"
)

func TestSaveCredential(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveCredential(eap.NewCredential("CorpNet", "alice", "first")))
	require.NoError(t, db.SaveCredential(eap.NewCredential("CorpNet", "bob", "secret")))

	// Saving again for the same account replaces the password
	replaced := eap.NewCredential("CorpNet", "alice", "second")
	replaced.Comment = eap.String("rotated")
	require.NoError(t, db.SaveCredential(replaced))

	creds, err := db.Credentials("CorpNet")
	require.NoError(t, err)
	require.Len(t, creds, 2)

	assert.Equal(t, "bob", creds[0].Username)
	assert.Nil(t, creds[0].Comment)
	assert.Equal(t, replaced, creds[1])
}

func TestSaveCredentialDefaults(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveCredential(eap.Credential{SSID: "Guest", Username: "visitor"}))

	creds, err := db.Credentials("Guest")
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, eap.DefaultCredentialKind, creds[0].Kind)
	assert.Equal(t, "com.apple.network.eap.user.item.wlan.ssid.Guest", creds[0].Service)
}

func TestSaveCredentialInvalid(t *testing.T) {
	db := openTestDB(t)

	assert.Error(t, db.SaveCredential(eap.Credential{Username: "alice"}))
	assert.Error(t, db.SaveCredential(eap.Credential{SSID: "CorpNet"}))
}

func TestDeleteCredentials(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.SaveCredential(eap.NewCredential("CorpNet", "alice", "pw")))
	require.NoError(t, db.SaveCredential(eap.NewCredential("CorpNet", "bob", "pw")))
	require.NoError(t, db.SaveCredential(eap.NewCredential("Guest", "visitor", "pw")))

	n, err := db.DeleteCredentials("CorpNet")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	creds, err := db.Credentials("CorpNet")
	require.NoError(t, err)
	assert.Empty(t, creds)

	creds, err = db.Credentials("Guest")
	require.NoError(t, err)
	assert.Len(t, creds, 1)
}

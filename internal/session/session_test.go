package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatadevbrasil/GITLENS-AI/internal/models"
)

func TestStoreRoundTrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nested", "profile.json"))

	// Nothing stored yet.
	u, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, u)

	user := NewUser("u1", "ada@example.com")
	require.NoError(t, store.Save(user))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, user, loaded)

	require.NoError(t, store.Clear())
	u, err = store.Load()
	require.NoError(t, err)
	assert.Nil(t, u)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestNewUserDerivesName(t *testing.T) {
	user := NewUser("u1", "ada.lovelace@example.com")

	assert.Equal(t, "ada.lovelace", user.Name)
	assert.Equal(t, models.TierFree, user.Tier)
	assert.NotEmpty(t, user.AvatarURL)
}

func TestUploadEntitlement(t *testing.T) {
	assert.False(t, Session{}.CanUploadArchive(), "anonymous")
	assert.ErrorIs(t, Session{}.RequireUpload(), ErrGatedFeature)

	free := NewUser("u1", "free@example.com")
	assert.False(t, Session{User: free}.CanUploadArchive())
	assert.ErrorIs(t, Session{User: free}.RequireUpload(), ErrGatedFeature)

	pro := NewUser("u2", "pro@example.com")
	pro.Tier = models.TierPro
	assert.True(t, Session{User: pro}.CanUploadArchive())
	assert.NoError(t, Session{User: pro}.RequireUpload())
}

package service

import (
	"testing"

	"buddyboard/internal/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshot(t *testing.T) {
	values := map[string]string{
		KeyModerationRequired:          "true",
		KeyModerationRequiredTherapist: "false",
		KeyProfanityEnabled:            "1",
		KeyProfanityBlocklist:          "ass, darn ,,  ",
	}
	overrides := map[uint64]bool{42: true}

	snap := buildSnapshot(values, overrides)

	assert.True(t, snap.RequiredDefault)
	require.NotNil(t, snap.RequiredTherapist)
	assert.False(t, *snap.RequiredTherapist)
	// no parent row means tri-state unset, falls back to the global default
	assert.Nil(t, snap.RequiredParent)
	assert.True(t, snap.ProfanityEnabled)
	assert.Equal(t, []string{"ass", "darn"}, snap.Blocklist)
	assert.True(t, snap.Overrides[42])
}

func TestBuildSnapshotEmpty(t *testing.T) {
	snap := buildSnapshot(map[string]string{}, nil)

	assert.False(t, snap.RequiredDefault)
	assert.Nil(t, snap.RequiredTherapist)
	assert.Nil(t, snap.RequiredParent)
	assert.False(t, snap.ProfanityEnabled)
	assert.Empty(t, snap.Blocklist)
}

func TestBuildSnapshotBadValues(t *testing.T) {
	// unparseable rows degrade per key, they never poison the snapshot
	values := map[string]string{
		KeyModerationRequired:       "definitely",
		KeyModerationRequiredParent: "maybe",
		KeyProfanityEnabled:         "yes please",
	}

	snap := buildSnapshot(values, nil)

	assert.False(t, snap.RequiredDefault)
	assert.Nil(t, snap.RequiredParent)
	assert.False(t, snap.ProfanityEnabled)
}

func TestSnapshotFeedsDecision(t *testing.T) {
	values := map[string]string{
		KeyModerationRequiredParent: "true",
		KeyProfanityEnabled:         "true",
		KeyProfanityBlocklist:       "ass",
	}
	snap := buildSnapshot(values, nil)

	parent := policy.Requester{ID: 10, Role: policy.RoleParent}
	got := policy.DecideModeration(parent, policy.PostInput{Title: "hi", Body: "free ass"}, snap)

	assert.False(t, got.Published)
	assert.True(t, got.Held)
	assert.Equal(t, "free ***", got.Body)

	therapist := policy.Requester{ID: 20, Role: policy.RoleTherapist}
	got = policy.DecideModeration(therapist, policy.PostInput{Title: "hi", Body: "ok"}, snap)
	assert.True(t, got.Published)
}

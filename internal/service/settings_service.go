package service

import (
	"errors"
	"strconv"
	"strings"

	"buddyboard/internal/policy"
	"buddyboard/internal/repository/mysql"
	"buddyboard/internal/repository/redis"
)

// Settings keys understood by the moderation snapshot. Role keys are
// tri-state: a missing row means "fall back to the global default".
const (
	KeyModerationRequired          = "moderation.required"
	KeyModerationRequiredTherapist = "moderation.required.therapist"
	KeyModerationRequiredParent    = "moderation.required.parent"
	KeyProfanityEnabled            = "profanity.enabled"
	KeyProfanityBlocklist          = "profanity.blocklist"
)

var knownKeys = map[string]bool{
	KeyModerationRequired:          true,
	KeyModerationRequiredTherapist: true,
	KeyModerationRequiredParent:    true,
	KeyProfanityEnabled:            true,
	KeyProfanityBlocklist:          true,
}

var ErrUnknownSettingKey = errors.New("unknown setting key")

type SettingsService struct {
	repo  *mysql.SettingRepository
	cache *redis.SettingsCache
}

func NewSettingsService() *SettingsService {
	return &SettingsService{
		repo:  mysql.NewSettingRepository(),
		cache: &redis.SettingsCache{},
	}
}

// Snapshot returns the moderation settings for one decision. Cache first,
// then mysql; on any store failure it degrades to the zero snapshot, which
// means no moderation and no masking. Moderation fails open.
func (s *SettingsService) Snapshot() policy.ModerationSettings {
	if snap, err := s.cache.Get(); err == nil {
		return snap
	}

	values, err := s.repo.GetAll()
	if err != nil {
		return policy.ModerationSettings{}
	}
	overrides, err := s.repo.Overrides()
	if err != nil {
		return policy.ModerationSettings{}
	}

	snap := buildSnapshot(values, overrides)
	_ = s.cache.Set(snap)
	return snap
}

// buildSnapshot assembles the decision input from raw settings rows.
// Unparseable values degrade per-key instead of aborting the snapshot.
func buildSnapshot(values map[string]string, overrides map[uint64]bool) policy.ModerationSettings {
	snap := policy.ModerationSettings{Overrides: overrides}

	snap.RequiredDefault = parseBool(values[KeyModerationRequired])
	snap.RequiredTherapist = parseTriState(values, KeyModerationRequiredTherapist)
	snap.RequiredParent = parseTriState(values, KeyModerationRequiredParent)
	snap.ProfanityEnabled = parseBool(values[KeyProfanityEnabled])
	snap.Blocklist = parseBlocklist(values[KeyProfanityBlocklist])

	return snap
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

func parseTriState(values map[string]string, key string) *bool {
	v, ok := values[key]
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &b
}

func parseBlocklist(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// All returns the raw settings rows for the admin screen.
func (s *SettingsService) All() (map[string]string, error) {
	return s.repo.GetAll()
}

// Update writes one settings row and drops the cached snapshot.
func (s *SettingsService) Update(key, value string) error {
	if !knownKeys[key] {
		return ErrUnknownSettingKey
	}
	if err := s.repo.Upsert(key, value); err != nil {
		return err
	}
	_ = s.cache.Invalidate()
	return nil
}

// SetOverride flips forced moderation for one author.
func (s *SettingsService) SetOverride(userID uint64, required bool) error {
	var err error
	if required {
		err = s.repo.SetOverride(userID, true)
	} else {
		err = s.repo.DeleteOverride(userID)
	}
	if err != nil {
		return err
	}
	_ = s.cache.Invalidate()
	return nil
}

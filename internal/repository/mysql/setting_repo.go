package mysql

import (
	"buddyboard/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	DB *gorm.DB
}

func NewSettingRepository() *SettingRepository {
	return &SettingRepository{DB: DB}
}

// GetAll returns every settings row as a key→value map.
func (r *SettingRepository) GetAll() (map[string]string, error) {
	var rows []model.Setting
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// Upsert writes one settings row, replacing any previous value for the key.
func (r *SettingRepository) Upsert(key, value string) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model.Setting{Key: key, Value: value}).Error
}

// Overrides returns the per-user forced-moderation flags.
func (r *SettingRepository) Overrides() (map[uint64]bool, error) {
	var rows []model.ModerationOverride
	if err := r.DB.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uint64]bool, len(rows))
	for _, row := range rows {
		out[row.UserID] = row.Required
	}
	return out, nil
}

// SetOverride upserts the flag for one user.
func (r *SettingRepository) SetOverride(userID uint64, required bool) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"required", "updated_at"}),
	}).Create(&model.ModerationOverride{UserID: userID, Required: required}).Error
}

// DeleteOverride removes the flag. Idempotent.
func (r *SettingRepository) DeleteOverride(userID uint64) error {
	return r.DB.Where("user_id = ?", userID).Delete(&model.ModerationOverride{}).Error
}

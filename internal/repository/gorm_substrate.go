package repository

import (
	"context"
	"course_cert_backend/internal/model"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSubstrate 将进度文档存入 progress_documents 表
type GormSubstrate struct {
	DB *gorm.DB
}

func NewGormSubstrate(db *gorm.DB) *GormSubstrate {
	return &GormSubstrate{DB: db}
}

func (r *GormSubstrate) Get(ctx context.Context, key string) (string, bool, error) {
	var doc model.ProgressDocument
	err := r.DB.WithContext(ctx).Where("doc_key = ?", key).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Payload, true, nil
}

func (r *GormSubstrate) Set(ctx context.Context, key, value string) error {
	doc := model.ProgressDocument{DocKey: key, Payload: value}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "doc_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&doc).Error
}

package model

import "time"

// ProgressDocument 进度文档在关系库中的存储行，Payload 为序列化后的 UserProgress
type ProgressDocument struct {
	DocKey    string    `gorm:"primaryKey;type:varchar(191)"`
	Payload   string    `gorm:"type:longtext;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ProgressDocument) TableName() string {
	return "progress_documents"
}

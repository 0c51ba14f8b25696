package util

const (
	CatalogLocal = "local"
	CatalogMinio = "minio"
)

// 与 config 中 progress.driver 的取值一致
const (
	ProgressDriverMemory = "memory"
	ProgressDriverGorm   = "gorm"
	ProgressDriverRedis  = "redis"
)

var (
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
)

package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 头像/封面图上传相关常量
const (
	MimeImage       = "image/"
	MimeOctetStream = "application/octet-stream"
	MaxImageSize    = 5 << 20
)

var AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

package util

import (
	"fmt"
	"regexp"
)

// 接受的链接形态: watch?v=、youtu.be/、embed/、shorts/，视频 id 固定 11 位。
// 域名前必须是行首、// 或 .，免得 evilyoutube.com 这类后缀碰瓷域名也被放行。
// 前端和后端共用这一份解析逻辑，不再各写各的正则。
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|//|\.)youtube\.com/watch\?(?:[^&\s]*&)*v=([A-Za-z0-9_-]{11})(?:[&#?]|$)`),
	regexp.MustCompile(`(?:^|//)youtu\.be/([A-Za-z0-9_-]{11})(?:[&#?]|$)`),
	regexp.MustCompile(`(?:^|//|\.)youtube\.com/embed/([A-Za-z0-9_-]{11})(?:[&#?]|$)`),
	regexp.MustCompile(`(?:^|//|\.)youtube\.com/shorts/([A-Za-z0-9_-]{11})(?:[&#?]|$)`),
}

// ExtractVideoID 从 YouTube 链接中提取 11 位视频 id，提取不到返回 ErrInvalidYouTubeURL
func ExtractVideoID(rawURL string) (string, error) {
	for _, re := range youtubePatterns {
		if m := re.FindStringSubmatch(rawURL); m != nil {
			return m[1], nil
		}
	}
	return "", ErrInvalidYouTubeURL
}

// ThumbnailURL 返回视频的默认封面图地址
func ThumbnailURL(videoID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID)
}

package youtube

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// VideoID extracts the video identifier from watch, share (youtu.be), and
// embed URL forms. A bare 11-character identifier is accepted as-is.
func VideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty video url")
	}

	if !strings.Contains(raw, "/") && !strings.Contains(raw, ".") {
		return raw, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse video url: %w", err)
	}
	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")

	switch {
	case host == "youtu.be":
		if id := strings.Trim(parsed.Path, "/"); id != "" {
			return id, nil
		}
	case strings.HasSuffix(host, "youtube.com"):
		if id := parsed.Query().Get("v"); id != "" {
			return id, nil
		}
		if strings.HasPrefix(parsed.Path, "/embed/") || strings.HasPrefix(parsed.Path, "/shorts/") {
			parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
			if len(parts) == 2 && parts[1] != "" {
				return parts[1], nil
			}
		}
	}
	return "", fmt.Errorf("unrecognized video url %q", raw)
}

// WatchURL formats a timestamped watch link. The offset is floored to whole
// seconds, matching the `t` fragment YouTube accepts.
func WatchURL(videoID string, at time.Duration) string {
	if at < 0 {
		at = 0
	}
	return fmt.Sprintf("https://youtube.com/watch?v=%s&t=%ds", videoID, int(at.Seconds()))
}

// FormatClock renders a duration as HH:MM:SS for display, rounding to the
// nearest second.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

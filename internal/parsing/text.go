package parsing

import "strings"

// bulletMarkers are the characters that introduce a bullet/responsibility
// line.
const bulletMarkers = "-•*"

// monthNamePattern matches full or abbreviated English month names.
const monthNamePattern = `(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*`

func isBulletLine(line string) bool {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(line, string(marker)) {
			return true
		}
	}
	return false
}

// stripBullet removes a leading bullet marker and surrounding whitespace.
func stripBullet(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), bulletMarkers+" "))
}

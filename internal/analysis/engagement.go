package analysis

import "fmt"

// EngagementRate formats (likes + comments) / views as a percentage with
// two decimals. Zero views yields "0%" rather than a division by zero.
func EngagementRate(views, likes, comments int64) string {
	if views == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(likes+comments)/float64(views)*100)
}

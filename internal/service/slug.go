package service

import (
	"strconv"
	"time"

	"github.com/gosimple/slug"
)

// NewPropertySlug derives a URL-safe slug from the title plus a
// base36 time token so repeated titles stay unique. The unique index on
// properties.slug backstops the theoretical same-instant collision.
func NewPropertySlug(title string) string {
	base := slug.Make(title)
	suffix := strconv.FormatInt(time.Now().UnixNano(), 36)
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}

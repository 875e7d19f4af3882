package domain

// Property lifecycle status.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

var PropertyStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

var PropertyTypes = []string{"apartment", "house", "duplex", "bungalow", "land", "commercial", "other"}

// Media kinds stored on property media records.
const (
	MediaKindImage = "image"
	MediaKindVideo = "video"
)

var ImageMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}

var VideoMimeTypes = []string{
	"video/mp4",
	"video/webm",
	"video/quicktime",
	"video/x-matroska",
}

// MaxUploadFiles caps the number of files accepted per request.
const MaxUploadFiles = 12

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func IsImageMime(mimeType string) bool { return contains(ImageMimeTypes, mimeType) }

func IsVideoMime(mimeType string) bool { return contains(VideoMimeTypes, mimeType) }

// IsAllowedMime reports whether the MIME type is on the upload allow-list.
func IsAllowedMime(mimeType string) bool {
	return IsImageMime(mimeType) || IsVideoMime(mimeType)
}

// MediaKindFor maps an allow-listed MIME type to its media kind.
// Anything not on the image list is treated as video; callers must
// gate on IsAllowedMime first.
func MediaKindFor(mimeType string) string {
	if IsImageMime(mimeType) {
		return MediaKindImage
	}
	return MediaKindVideo
}

func IsValidPropertyType(value string) bool { return contains(PropertyTypes, value) }

func IsValidStatus(value string) bool { return contains(PropertyStatuses, value) }

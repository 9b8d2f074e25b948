package utils

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhotoKeyPrefix is the key space holding all recipe photos in object
// storage.
const PhotoKeyPrefix = "recipe-photos"

// TempIDPrefix marks a client-side placeholder photo identifier issued
// before the server has assigned a real path.
const TempIDPrefix = "temp-"

// NewUUID returns a time-ordered UUID string, falling back to a random
// one when v7 generation fails.
func NewUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewTempID issues a placeholder photo identifier for an upload that has
// not been acknowledged by the server yet.
func NewTempID() string {
	return TempIDPrefix + NewUUID()
}

// IsTempID reports whether id is a placeholder photo identifier.
func IsTempID(id string) bool {
	return strings.HasPrefix(id, TempIDPrefix)
}

// NewPhotoFilename builds a photo filename unique within a recipe:
// the current unix-millisecond timestamp plus a short random suffix,
// keeping the extension of the original upload.
func NewPhotoFilename(original string) string {
	ext := strings.ToLower(path.Ext(original))
	if ext == "" {
		ext = ".jpg"
	}

	suffix := strings.Split(uuid.NewString(), "-")[0]

	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// PhotoKey builds the object storage key for one recipe photo.
func PhotoKey(recipeID int64, filename string) string {
	return fmt.Sprintf("%s/%d/%s", PhotoKeyPrefix, recipeID, filename)
}

// PhotoLeaf returns the final path element of a photo path or URL; photo
// deletion matches stored paths by this leaf.
func PhotoLeaf(p string) string {
	return path.Base(strings.TrimSuffix(p, "/"))
}

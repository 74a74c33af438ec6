package ginutil

import (
	"errors"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrMissingFile is returned when a multipart field carries no file
var ErrMissingFile = errors.New("missing file")

// ParamInt64 extracts an int64 from path parameters
// Returns the parsed int64 and error if parsing fails
func ParamInt64(c *gin.Context, key string) (int64, error) {
	valueStr := c.Param(key)
	return strconv.ParseInt(valueStr, 10, 64)
}

// UploadedFile is an opened multipart file with its declared metadata
type UploadedFile struct {
	multipart.File
	Filename    string
	ContentType string
	Size        int64
}

// FormFile opens the named multipart file field. The caller closes it.
func FormFile(c *gin.Context, field string) (*UploadedFile, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, ErrMissingFile
	}
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	return &UploadedFile{
		File:        f,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	}, nil
}

// PostFormTrimmed returns a trimmed form value
func PostFormTrimmed(c *gin.Context, key string) string {
	return strings.TrimSpace(c.PostForm(key))
}

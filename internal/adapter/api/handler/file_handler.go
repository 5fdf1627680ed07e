package handler

import (
	"github.com/labstack/echo/v4"

	"estatesalehub/internal/infrastructure/storage"
	"estatesalehub/pkg/errors"
	"estatesalehub/pkg/response"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

type FileHandler struct {
	storageClient *storage.CloudStorageClient
}

var fileHandler *FileHandler

// SetupFileHandler initializes the file handler with its dependencies
func SetupFileHandler(storageClient *storage.CloudStorageClient) {
	fileHandler = NewFileHandler(storageClient)
}

// GetFileHandler returns the file handler instance
func GetFileHandler() *FileHandler {
	return fileHandler
}

func NewFileHandler(storageClient *storage.CloudStorageClient) *FileHandler {
	return &FileHandler{
		storageClient: storageClient,
	}
}

// UploadListingImage accepts a multipart image and stores it for use in
// listing image URLs.
func (h *FileHandler) UploadListingImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file provided", err))
	}

	if file.Size > maxImageSize {
		return response.Error(c, errors.BadRequest("File exceeds the 5MB limit", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	url, err := h.storageClient.UploadImage(c.Request().Context(), src, file.Header.Get("Content-Type"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}

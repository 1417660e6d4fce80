package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/careslot/clinic-scheduler/internal/httperr"
	"github.com/careslot/clinic-scheduler/internal/httpresp"
	"github.com/careslot/clinic-scheduler/internal/storage"
)

type StorageHandler struct {
	presigner *storage.Presigner
}

func NewStorageHandler(presigner *storage.Presigner) *StorageHandler {
	return &StorageHandler{presigner: presigner}
}

type PresignRequest struct {
	FileType string `json:"file_type" binding:"required"`
	Folder   string `json:"folder" binding:"required"`
}

var allowedFolders = map[string]bool{
	"profile-pictures": true,
	"documents":        true,
}

func (h *StorageHandler) Presign(c *gin.Context) {
	var req PresignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "File type and folder are required.")
		return
	}

	if !allowedFolders[req.Folder] {
		httperr.BadRequest(c, "invalid_folder", "Unknown upload folder.")
		return
	}
	if !strings.HasPrefix(req.FileType, "image/") && req.FileType != "application/pdf" {
		httperr.BadRequest(c, "invalid_file_type", "Only images and PDFs can be uploaded.")
		return
	}

	target, err := h.presigner.PresignUpload(c.Request.Context(), req.Folder, req.FileType)
	if err != nil {
		httperr.Internal(c, "failed_to_presign", "Could not create upload URL.")
		return
	}

	httpresp.OK(c, target)
}

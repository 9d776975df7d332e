package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/sns-consult-backend/internal/http/response"
	"github.com/yungbote/sns-consult-backend/internal/platform/artifact"
	"github.com/yungbote/sns-consult-backend/internal/platform/docx"
	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
	"github.com/yungbote/sns-consult-backend/internal/services"
)

const minutesDownloadName = "audio.docx"

type AudioHandler struct {
	log       *logger.Logger
	minutes   services.MinutesService
	maxUpload int64
	// maxBody caps the multipart request; the form adds a little overhead
	// on top of the file itself.
	maxBody int64
}

func NewAudioHandler(log *logger.Logger, minutes services.MinutesService, maxUploadBytes int64) *AudioHandler {
	return &AudioHandler{
		log:       log.With("handler", "AudioHandler"),
		minutes:   minutes,
		maxUpload: maxUploadBytes,
		maxBody:   maxUploadBytes + 1<<20,
	}
}

// POST /upload-audio
func (h *AudioHandler) Upload(c *gin.Context) {
	if h.maxBody > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBody)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			response.RespondError(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("File is too large. Maximum allowed size is %d MB.", h.maxUpload>>20))
			return
		}
		response.RespondError(c, http.StatusBadRequest, "No file provided")
		return
	}
	if fh.Filename == "" {
		response.RespondError(c, http.StatusBadRequest, "No file selected")
		return
	}
	if err := h.minutes.Validate(fh.Filename, fh.Size); err != nil {
		h.log.Warn("upload rejected", "filename", fh.Filename, "size", fh.Size, "error", err)
		response.RespondAPIError(c, err)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	defer f.Close()

	m, err := h.minutes.Process(c.Request.Context(), fh.Filename, f)
	if err != nil {
		response.RespondAPIError(c, err)
		return
	}
	response.RespondOK(c, m)
}

// GET /download-audio-docx
func (h *AudioHandler) Download(c *gin.Context) {
	rc, err := h.minutes.Latest(c.Request.Context())
	if err != nil {
		if errors.Is(err, artifact.ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "No document available. Please upload an audio file first.")
			return
		}
		response.RespondAPIError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", `attachment; filename="`+minutesDownloadName+`"`)
	c.Header("Content-Type", docx.ContentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		h.log.Warn("document download interrupted", "error", err)
	}
}

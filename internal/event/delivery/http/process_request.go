package http

import (
	"errors"
	"mime/multipart"

	"github.com/gin-gonic/gin"
)

// maxAudioBytes caps uploaded voice clips at 20 MiB.
const maxAudioBytes = 20 << 20

var errMissingAudio = errors.New("an 'audio' file upload is required")

// processScheduleReq binds and validates the schedule request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processVoiceReq pulls the uploaded audio clip out of the multipart form.
func (h *handler) processVoiceReq(c *gin.Context) (multipart.File, error) {
	header, err := c.FormFile("audio")
	if err != nil {
		return nil, errMissingAudio
	}
	if header.Size > maxAudioBytes {
		return nil, errors.New("audio upload exceeds the 20MB limit")
	}
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	return file, nil
}

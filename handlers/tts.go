package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"voice-bridge/models"
	"voice-bridge/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TTSHandler struct {
	Audio services.AudioService
}

// NewTTSHandler 构造函数，强制注入 AudioService
func NewTTSHandler(audio services.AudioService) *TTSHandler {
	return &TTSHandler{Audio: audio}
}

// Synthesize 合成接口：POST 任意路径，body 为 {"text": "..."}
func (h *TTSHandler) Synthesize(c *gin.Context) {
	var req models.SynthesizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
		return
	}

	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no text provided"})
		return
	}

	reqID := uuid.New().String()
	audio, err := h.Audio.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, services.ErrTimeout) {
			log.Printf("⏰ 合成超时 [req:%s]", reqID)
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "TTS timed out"})
			return
		}
		log.Printf("❌ 合成失败 [req:%s]: %v", reqID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 大文件默认会走 chunked 编码，这里显式声明长度
	c.Header("Content-Length", strconv.Itoa(len(audio)))
	c.Data(http.StatusOK, "audio/wav", audio)
}

// Health 存活探针：GET 任意路径一律返回 ok
func (h *TTSHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

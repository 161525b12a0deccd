package services

import (
	"context"
)

// AudioService 定义语音合成的标准接口
type AudioService interface {
	// Synthesize 把文本合成为完整的 WAV 音频数据
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

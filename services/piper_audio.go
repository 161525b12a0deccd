package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"voice-bridge/config"
	"voice-bridge/pkg/wav"
)

// ErrTimeout 子进程执行超过限定时间
var ErrTimeout = errors.New("TTS timed out")

// PiperAudioService 通过本地 piper 子进程合成语音
type PiperAudioService struct {
	BinPath    string
	ModelPath  string
	SampleRate int
	Timeout    time.Duration
}

func NewPiperAudioService(cfg config.PiperConfig) *PiperAudioService {
	return &PiperAudioService{
		BinPath:    resolvePiperPath(cfg.BinPath),
		ModelPath:  cfg.ModelPath,
		SampleRate: cfg.SampleRate,
		Timeout:    cfg.Timeout(),
	}
}

// resolvePiperPath 自动判定 piper 执行路径
func resolvePiperPath(binPath string) string {
	// 1. 优先从系统 PATH 寻找 (适合部署后已经配置好 PATH 的情况)
	if path, err := exec.LookPath(binPath); err == nil {
		return path
	}

	// 2. 找不到就原样返回，让执行时报错并透传给调用方
	return binPath
}

// Synthesize 执行一次合成：文本写入 stdin，stdout 读出裸 PCM，最后包成 WAV
// 每个请求独立拉起一个进程，失败不重试
func (s *PiperAudioService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, s.BinPath, "--model", s.ModelPath, "--output-raw")
	cmd.Stdin = strings.NewReader(text)
	// 超时被杀后如果有残留子进程占着管道，最多再等一秒就放弃
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("piper 执行失败: %v: %s", err, msg)
		}
		return nil, fmt.Errorf("piper 执行失败: %v", err)
	}

	// piper 输出 16bit 小端单声道 PCM
	return wav.Encode(stdout.Bytes(), 1, 16, s.SampleRate), nil
}

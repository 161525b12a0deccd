package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"

	"voice-bridge/config"
	"voice-bridge/handlers"
	"voice-bridge/services"
	"voice-bridge/utils/version"

	"github.com/gin-gonic/gin"
)

func main() {

	// 加载配置
	cfg, err := config.LoadConfig("./config/config.yaml")
	if err != nil {
		panic(err)
	}

	// 环境变量优先于配置文件，方便容器部署
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if bin := os.Getenv("PIPER_BIN"); bin != "" {
		cfg.Piper.BinPath = bin
	}
	if model := os.Getenv("PIPER_MODEL"); model != "" {
		cfg.Piper.ModelPath = model
	}

	log.Println(version.String())

	// 初始化语音服务
	audioService := services.NewPiperAudioService(cfg.Piper)

	CheckPiperResources(audioService)

	// 注册路由：POST 任意路径做合成，GET 任意路径做存活探针
	ttsHandler := handlers.NewTTSHandler(audioService)

	r := gin.New()
	// 只挂 Recovery，不打每个请求的访问日志
	r.Use(gin.Recovery())
	r.POST("/*path", ttsHandler.Synthesize)
	r.GET("/*path", ttsHandler.Health)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 语音服务监听 %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}

// CheckPiperResources 启动时检查模型和二进制是否就位，缺失只告警不退出
// 缺失时请求会以 500 返回，行为和运行中资源被移走保持一致
func CheckPiperResources(svc *services.PiperAudioService) {
	ok := true
	if _, err := exec.LookPath(svc.BinPath); err != nil {
		log.Printf("⚠️ 未找到 piper 可执行文件: %s", svc.BinPath)
		ok = false
	}
	if _, err := os.Stat(svc.ModelPath); err != nil {
		log.Printf("⚠️ 模型文件不可用: %s", svc.ModelPath)
		ok = false
	}
	if ok {
		log.Println("✅ piper 资源检查完成")
	}
}

package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

// 日志文件超过该大小时轮转
const maxLogSize = 10 * 1024 * 1024

var (
	logFile *os.File
	logPath string
)

// Init 配置全局日志输出
// path 为空时输出到标准错误，否则写入指定文件并在超过大小上限时轮转
func Init(path string) error {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	if path == "" {
		log.SetOutput(os.Stderr)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建日志目录失败: %w", err)
	}

	logPath = path
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("打开日志文件失败: %w", err)
	}

	if info, err := f.Stat(); err == nil && info.Size() > maxLogSize {
		_ = f.Close()
		backupPath := fmt.Sprintf("%s.%d", path, time.Now().Unix())
		_ = os.Rename(path, backupPath)
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("轮转后创建日志文件失败: %w", err)
		}
	}

	logFile = f
	log.SetOutput(logFile)
	log.Printf("日志已初始化: %s", path)
	return nil
}

// Close 关闭日志文件
func Close() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// LogPanic 记录 panic 和堆栈
func LogPanic(r any) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath 返回当前日志文件路径
func GetLogPath() string {
	return logPath
}

package cvd

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Logger 简洁的进度日志系统
type Logger struct {
	w          io.Writer
	stepStart  time.Time
	totalStart time.Time
}

// NewLogger 创建输出到 stdout 的日志记录器
func NewLogger() *Logger {
	return NewLoggerTo(os.Stdout)
}

// NewLoggerTo 创建输出到 w 的日志记录器，DEBUG 输出也写入 w
func NewLoggerTo(w io.Writer) *Logger {
	SetDebugOutput(w)
	return &Logger{
		w:          w,
		totalStart: time.Now(),
	}
}

// Step 开始一个处理步骤
// 格式: [步骤名] 参数 ...
func (l *Logger) Step(name string, params ...interface{}) {
	l.stepStart = time.Now()
	if len(params) > 0 {
		fmt.Fprintf(l.w, "[%s] %v ... ", name, params[0])
	} else {
		fmt.Fprintf(l.w, "[%s] ", name)
	}
}

// Done 完成当前步骤
// 格式: → 结果 (耗时)
func (l *Logger) Done(result string) {
	elapsed := time.Since(l.stepStart)
	if elapsed > 100*time.Millisecond {
		fmt.Fprintf(l.w, "→ %s (%.2fs)\n", result, elapsed.Seconds())
	} else {
		fmt.Fprintf(l.w, "→ %s\n", result)
	}
}

// Total 输出总耗时
func (l *Logger) Total() {
	total := time.Since(l.totalStart)
	fmt.Fprintf(l.w, "\n✓ 总耗时: %.2fs\n", total.Seconds())
}

// Info 输出信息（不计时）
func (l *Logger) Info(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "  • "+format+"\n", args...)
}

// Warn 输出警告
func (l *Logger) Warn(format string, args ...interface{}) {
	fmt.Fprintf(l.w, "  ⚠ "+format+"\n", args...)
}

var Debug = debug
var debugEnabled = os.Getenv("DEBUG") != ""

var (
	debugMu     sync.Mutex
	debugOutput io.Writer = os.Stdout
)

// SetDebugOutput 设置 DEBUG 输出的目标，通常与 Logger 使用同一个 writer
func SetDebugOutput(w io.Writer) {
	debugMu.Lock()
	debugOutput = w
	debugMu.Unlock()
}

func debug(format string, args ...interface{}) {
	if debugEnabled {
		debugMu.Lock()
		fmt.Fprintf(debugOutput, format+"\n", args...)
		debugMu.Unlock()
	}
}

package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultServiceName = "qamees-api"

// Options 日志输出配置
type Options struct {
	Dir        string
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Level      string // 为空时 debug 模式取 debug，其余取 info
	Service    string
	Stdout     bool // 非 debug 模式同时输出到标准输出
}

// L 全局结构化日志实例，Init 之前为空
var L *zap.Logger

var stdoutLogger = newConsole(zap.NewAtomicLevelAt(zap.InfoLevel), zapcore.LowercaseLevelEncoder)

// Init 初始化全局日志并替换 zap 全局实例
func Init(mode string, options Options) *zap.Logger {
	L = New(mode, options)
	zap.ReplaceGlobals(L)
	return L
}

// New debug 模式输出彩色控制台；其余模式写 JSON 滚动文件
func New(mode string, options Options) *zap.Logger {
	debug := strings.EqualFold(strings.TrimSpace(mode), "debug")
	level := resolveLevel(options.Level, debug)
	service := strings.TrimSpace(options.Service)
	if service == "" {
		service = defaultServiceName
	}

	var log *zap.Logger
	if debug {
		log = newConsole(level, zapcore.CapitalColorLevelEncoder)
	} else {
		log = zap.New(zapcore.NewTee(releaseCores(options, level)...), zap.AddCaller(), zap.AddCallerSkip(1))
	}
	return log.With(zap.String("service", service))
}

func releaseCores(options Options, level zap.AtomicLevel) []zapcore.Core {
	encoder := zapcore.NewJSONEncoder(encoderConfig(zapcore.LowercaseLevelEncoder))
	cores := make([]zapcore.Core, 0, 2)
	sink, err := newFileSink(options)
	if err != nil {
		// 文件不可写时只能退回标准输出
		os.Stderr.WriteString("logger: " + err.Error() + ", writing to stdout\n")
		options.Stdout = true
	} else {
		cores = append(cores, zapcore.NewCore(encoder, sink, level))
	}
	if options.Stdout {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level))
	}
	return cores
}

func newConsole(level zap.AtomicLevel, encodeLevel zapcore.LevelEncoder) *zap.Logger {
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig(encodeLevel)), zapcore.Lock(os.Stdout), level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
}

func encoderConfig(encodeLevel zapcore.LevelEncoder) zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.MessageKey = "message"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeDuration = zapcore.MillisDurationEncoder
	cfg.EncodeLevel = encodeLevel
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return cfg
}

func resolveLevel(raw string, debug bool) zap.AtomicLevel {
	if value := strings.TrimSpace(raw); value != "" {
		if parsed, err := zapcore.ParseLevel(value); err == nil {
			return zap.NewAtomicLevelAt(parsed)
		}
	}
	if debug {
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

// Z 全局 logger，未初始化时输出到标准输出
func Z() *zap.Logger {
	if L != nil {
		return L
	}
	return stdoutLogger
}

// S SugaredLogger
func S() *zap.SugaredLogger {
	return Z().Sugar()
}

// SW 附带键值对的 SugaredLogger
func SW(kv ...interface{}) *zap.SugaredLogger {
	return S().With(kv...)
}

// Sync 退出前刷新缓冲
func Sync() {
	_ = Z().Sync()
}

func Debugw(message string, kv ...interface{}) { S().Debugw(message, kv...) }

func Infow(message string, kv ...interface{}) { S().Infow(message, kv...) }

func Warnw(message string, kv ...interface{}) { S().Warnw(message, kv...) }

func Errorw(message string, kv ...interface{}) { S().Errorw(message, kv...) }

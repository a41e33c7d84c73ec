package xlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// 分级printf日志前端. 默认只打console,
// Init后异步写滚动文件. 库内部不主动Init, 由宿主决定.

var (
	LogLevel     = debugLog
	std          *log.Logger
	stdWriter    io.WriteCloser
	logToConsole = true
)

const (
	debugLog int = iota + 1
	infoLog
	warnLog
	errorLog
	fatalLog

	stdTimeFormat = "2006-01-02T15:04:05.99999Z07:00 " // RFC3339Nano
)

var logName = []string{
	debugLog: "[DEBUG] ",
	infoLog:  "[INFO] ",
	warnLog:  "[WARN] ",
	errorLog: "[ERROR] ",
	fatalLog: "[FATAL] ",
}

// Options 文件日志参数
type Options struct {
	Dir           string // 日志目录
	Name          string // 文件名. 空则取可执行名
	MaxSize       int    // 单文件上限(MB)
	MaxAge        int    // 保留天数
	MaxBackups    int    // 备份个数
	QueueSize     int    // 异步队列长度
	FlushInterval int    // 刷盘间隔(秒)
	Console       bool   // 是否同时打console
}

func (o *Options) fill() {
	if o.Dir == "" {
		o.Dir = "./logs"
	}
	if o.Name == "" {
		o.Name = filepath.Base(os.Args[0])
	}
	if o.MaxSize == 0 {
		o.MaxSize = 100
	}
	if o.MaxAge == 0 {
		o.MaxAge = 30
	}
	if o.MaxBackups == 0 {
		o.MaxBackups = 200
	}
	if o.QueueSize == 0 {
		o.QueueSize = 1024
	}
	if o.FlushInterval == 0 {
		o.FlushInterval = 1
	}
}

// Init 启用文件日志. 重复调用先关旧的
func Init(opt Options) error {
	opt.fill()
	if err := os.MkdirAll(opt.Dir, 0744); err != nil {
		return err
	}
	Close()
	fname := filepath.Join(opt.Dir, opt.Name+".log")
	stdWriter = NewLogger(fname, opt.MaxSize, opt.MaxAge, opt.MaxBackups, opt.QueueSize, opt.FlushInterval)
	std = log.New(stdWriter, "", log.Lshortfile)
	log.SetFlags(log.Lshortfile)
	logToConsole = opt.Console
	return nil
}

func output(lvl int, skip int, format string, v ...interface{}) {
	preFix := logName[lvl]
	var str string
	if format == "" {
		str = fmt.Sprint(v...)
	} else {
		str = fmt.Sprintf(format, v...)
	}

	preFix += time.Now().Format(stdTimeFormat)
	if std != nil {
		std.SetPrefix(preFix)
		std.Output(skip+3, str)
	}
	if logToConsole {
		log.SetPrefix(preFix)
		log.Output(skip+3, str)
	}
}

func Debug(v ...interface{}) {
	if LogLevel > debugLog {
		return
	}
	output(debugLog, 0, "", v...)
}

func Debugf(format string, v ...interface{}) {
	if LogLevel > debugLog {
		return
	}
	output(debugLog, 0, format, v...)
}

func Info(v ...interface{}) {
	if LogLevel > infoLog {
		return
	}
	output(infoLog, 0, "", v...)
}

func InfoF(format string, v ...interface{}) {
	if LogLevel > infoLog {
		return
	}
	output(infoLog, 0, format, v...)
}

func Warn(v ...interface{}) {
	if LogLevel > warnLog {
		return
	}
	output(warnLog, 0, "", v...)
}

func Warnf(format string, v ...interface{}) {
	if LogLevel > warnLog {
		return
	}
	output(warnLog, 0, format, v...)
}

func Error(v ...interface{}) {
	if LogLevel > errorLog {
		return
	}
	output(errorLog, 0, "", v...)
}

func Errorf(format string, v ...interface{}) {
	if LogLevel > errorLog {
		return
	}
	output(errorLog, 0, format, v...)
}

func ErrorfSkip(skip int, format string, v ...interface{}) {
	if LogLevel > errorLog {
		return
	}
	output(errorLog, skip, format, v...)
}

func Fatal(v ...interface{}) {
	output(fatalLog, 0, "", v...)
}

func Fatalf(format string, v ...interface{}) {
	output(fatalLog, 0, format, v...)
}

func Sync() error {
	if realLogger, ok := stdWriter.(*Logger); ok {
		realLogger.Sync()
	}
	return nil
}

func Close() {
	if stdWriter != nil {
		if realLogger, ok := stdWriter.(*Logger); ok {
			realLogger.Sync()
		}
		stdWriter.Close()
		stdWriter = nil
		std = nil
	}
}

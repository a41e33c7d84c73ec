package xlog

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	blockCount uint64
	logCount   uint64
	logBytes   uint64
)

// Logger 异步落盘的滚动日志writer.
// 写满队列直接丢弃并计数, 不阻塞调用方
type Logger struct {
	inputQ chan []byte
	closeQ chan int
	flushQ chan int
	wg     sync.WaitGroup
	l      *lumberjack.Logger
}

func (l *Logger) Write(p []byte) (n int, err error) {
	slice := make([]byte, len(p))
	copy(slice, p)
	select {
	case l.inputQ <- slice:
		return len(slice), nil
	default:
		atomic.AddUint64(&blockCount, 1)
		return 0, errors.New("log chan full")
	}
}

func (l *Logger) Close() error {
	l.wg.Add(1)
	close(l.closeQ)
	l.wg.Wait()
	l.l = nil
	return nil
}

func (l *Logger) Sync() error {
	l.flushQ <- 1
	return nil
}

// NewLogger fname日志路径, msize单文件上限(MB), mage保留天数,
// mbackups备份个数, qsize异步队列长度, flushInterval刷盘间隔(秒)
func NewLogger(fname string, msize, mage, mbackups, qsize, flushInterval int) *Logger {
	realLogger := &lumberjack.Logger{
		Filename:   fname,
		MaxSize:    msize,
		MaxAge:     mage,
		MaxBackups: mbackups,
	}

	l := &Logger{
		inputQ: make(chan []byte, qsize),
		closeQ: make(chan int),
		flushQ: make(chan int),
		l:      realLogger,
	}

	go func() {
		ticker := time.NewTicker(time.Second * time.Duration(flushInterval))
		defer ticker.Stop()
		for {
			select {
			case p := <-l.inputQ:
				atomic.AddUint64(&logCount, 1)
				atomic.AddUint64(&logBytes, uint64(len(p)))
				realLogger.Write(p)
			case <-ticker.C:
				// 刷新
			case <-l.flushQ:
				// 刷新
			case <-l.closeQ:
			out:
				for {
					select {
					case p := <-l.inputQ:
						realLogger.Write(p)
					default:
						break out
					}
				}
				realLogger.Close()
				l.wg.Done()
				return
			}
		}
	}()

	return l
}

func BlockCount() uint64 {
	return atomic.LoadUint64(&blockCount)
}

func LogCount() uint64 {
	return atomic.LoadUint64(&logCount)
}

func LogBytes() uint64 {
	return atomic.LoadUint64(&logBytes)
}

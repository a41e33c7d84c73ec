package xutil

import (
	"bytes"
	"fmt"
	"net/http"
	httppprof "net/http/pprof"
	"runtime"
	"runtime/pprof"
	"time"
)

/*
	调试命令. /help列出全部
*/

var units = []string{"bytes", "KB", "MB", "GB", "TB", "PB"}

func formatBytes(val uint64) string {
	var i int
	var target uint64
	for i = range units {
		target = 1 << uint(10*(i+1))
		if val < target {
			break
		}
	}
	if i > 0 {
		return fmt.Sprintf("%0.2f%s (%d bytes)",
			float64(val)/(float64(target)/1024), units[i], val)
	}
	return fmt.Sprintf("%d bytes", val)
}

func defaultCmd(h *Host) {
	h.HandleHttpCmd("/help", func(args []string) string {
		buffer := new(bytes.Buffer)
		for i := 0; i < len(h.httpCmds); i++ {
			buffer.WriteString(h.httpCmds[i])
			buffer.WriteString("\n")
		}
		return buffer.String()
	})

	// 标准pprof口. 在线采样, 不落文件
	h.serveMux.HandleFunc("/debug/pprof/", httppprof.Index)
	h.serveMux.HandleFunc("/debug/pprof/cmdline", httppprof.Cmdline)
	h.serveMux.HandleFunc("/debug/pprof/profile", httppprof.Profile)
	h.serveMux.HandleFunc("/debug/pprof/symbol", httppprof.Symbol)
	h.serveMux.HandleFunc("/debug/pprof/trace", httppprof.Trace)

	h.serveMux.HandleFunc("/debug/stack", func(w http.ResponseWriter, r *http.Request) {
		err := pprof.Lookup("goroutine").WriteTo(w, 2)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(err.Error()))
		}
	})

	h.serveMux.HandleFunc("/debug/mem", func(w http.ResponseWriter, r *http.Request) {
		var s runtime.MemStats
		runtime.ReadMemStats(&s)
		_, _ = fmt.Fprintf(w, "alloc: %v\n", formatBytes(s.Alloc))
		_, _ = fmt.Fprintf(w, "total-alloc: %v\n", formatBytes(s.TotalAlloc))
		_, _ = fmt.Fprintf(w, "sys: %v\n", formatBytes(s.Sys))
		_, _ = fmt.Fprintf(w, "mallocs: %v\n", formatBytes(s.Mallocs))
		_, _ = fmt.Fprintf(w, "frees: %v\n", formatBytes(s.Frees))
		_, _ = fmt.Fprintf(w, "heap-alloc: %v\n", formatBytes(s.HeapAlloc))
		_, _ = fmt.Fprintf(w, "heap-in-use: %v\n", formatBytes(s.HeapInuse))
		_, _ = fmt.Fprintf(w, "heap-object: %v\n", formatBytes(s.HeapObjects))
		_, _ = fmt.Fprintf(w, "next-gc: when heap-alloc >= %v\n", formatBytes(s.NextGC))
		_, _ = fmt.Fprintf(w, "gc-pause-total: %v\n", time.Duration(s.PauseTotalNs))
		_, _ = fmt.Fprintf(w, "num-gc: %v\n", s.NumGC)
	})

	h.serveMux.HandleFunc("/debug/stat", func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, "goroutines: %v\n", runtime.NumGoroutine())
		_, _ = fmt.Fprintf(w, "OS Threads: %v\n", pprof.Lookup("threadcreate").Count())
		_, _ = fmt.Fprintf(w, "GOMAXPROCS: %v\n", runtime.GOMAXPROCS(0))
		_, _ = fmt.Fprintf(w, "num CPU: %v\n", runtime.NumCPU())
		_, _ = fmt.Fprintf(w, "go version: %v\n", runtime.Version())
	})

	h.serveMux.HandleFunc("/debug/gc", func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		runtime.GC()
		taken := time.Since(start)
		_, _ = w.Write([]byte("ok, " + taken.String() + "\n"))
	})
}

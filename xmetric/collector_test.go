package xmetric

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xfec/fec"
)

// 宿主线程节拍的替身
func pump(g *Gather, stop chan struct{}) {
	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			g.Run(0)
		case <-stop:
			return
		}
	}
}

func TestGatherFecJob(t *testing.T) {
	mux := http.NewServeMux()
	g := NewGather(nil, mux, "127.0.0.1", 0).Alias("test")
	g.SetNewJob(func() MetricJob { return NewFecJob(g) })
	require.True(t, g.Init())
	defer g.Destroy()

	stop := make(chan struct{})
	go pump(g, stop)
	defer close(stop)

	// 制造一点计数器流量
	var v feckit.LightVector[int]
	for i := 0; i < 100; i++ {
		v.Append(i)
	}
	w := feckit.NewWindowedMinMax(feckit.SeekMin, 1000)
	w.Update(10, 0)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, "xfec_lightvec_grow_allocs"), "body:\n%s", text)
	assert.True(t, strings.Contains(text, "xfec_window_resets"), "body:\n%s", text)
	assert.True(t, strings.Contains(text, "go_goroutines"), "body:\n%s", text)
}

func TestGatherCollectTimeoutWithoutPump(t *testing.T) {
	// 没有宿主节拍时job采集超时跳过, 不卡抓取, 运行时指标照常
	mux := http.NewServeMux()
	g := NewGather(nil, mux, "127.0.0.1", 0)
	require.True(t, g.Init())
	defer g.Destroy()

	done := make(chan struct{})
	go func() {
		ch := make(chan prometheus.Metric, 256)
		newGoCollector(g).Collect(ch)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("go collector blocked")
	}
}

//go:build debug
// +build debug

package feckit

// debug构建: go test -tags debug
func assertTrue(cond bool, msg string) {
	if !cond {
		panic(msg)
	}
}

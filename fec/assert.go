//go:build !debug
// +build !debug

package feckit

// release构建编译为空函数, 零开销
func assertTrue(bool, string) {}

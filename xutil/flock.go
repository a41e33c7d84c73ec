package xutil

import (
	"os"
	"strconv"
)

// pid文件. 记录进程号, 退出时删除
type FLock struct {
	name string
}

func NewFlock(fileName string) (*FLock, error) {
	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_RDWR, os.FileMode(0600))
	if err != nil {
		return nil, err
	}
	f.WriteString(strconv.Itoa(os.Getpid()))
	f.WriteString("\n")
	f.Close()
	return &FLock{name: fileName}, nil
}

func (f *FLock) Close() {
	if f.name != "" {
		os.Remove(f.name)
		f.name = ""
	}
}

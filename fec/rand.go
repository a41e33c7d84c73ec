package feckit

import (
	"math/bits"
)

// PCGRandom PCG-XSH-RR 伪随机数发生器.
// 给定种子对, 输出序列完全确定, 可复现.
// From http://www.pcg-random.org/
type PCGRandom struct {
	state uint64
	inc   uint64
}

// Seed 用两个64位整数播种
func (p *PCGRandom) Seed(y, x uint64) {
	p.state = 0
	p.inc = (y << 1) | 1
	p.Next()
	p.state += x
	p.Next()
}

// Next 产生下一个32位随机数
func (p *PCGRandom) Next() uint32 {
	oldState := p.state
	p.state = oldState*6364136223846793005 + p.inc
	xorShifted := uint32(((oldState >> 18) ^ oldState) >> 27)
	rot := int(oldState >> 59)
	return bits.RotateLeft32(xorShifted, -rot)
}

// NextRange 产生 [0, n) 区间的随机数. n为0返回0
func (p *PCGRandom) NextRange(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	return p.Next() % n
}

package internal

import (
	"bytes"
	"sync"
)

var BufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer([]byte{})
	},
}

var Float64SlicePool = sync.Pool{
	New: func() interface{} {
		s := make([]float64, 0, 64)
		return &s
	},
}

package main

import (
	"bytes"
	"fmt"
	"time"

	"github.com/chronnie/hpack"
)

func main() {
	const iterations = 100000

	packer := hpack.New()
	if err := packer.Init(hpack.DefaultHeaderTableSize); err != nil {
		fmt.Println("failed to init packer:", err)
		return
	}

	h := hpack.Header{Name: "custom-key", Value: "custom-header"}
	opts := hpack.Options{IndexPolicy: hpack.NotIndexed}

	start := time.Now()
	var buf bytes.Buffer
	for i := 0; i < iterations; i++ {
		buf.Reset()
		if _, err := packer.Encode(&buf, h, opts); err != nil {
			fmt.Println("encode error:", err)
			return
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("encoded %d headers in %s (%.0f ops/sec)\n",
		iterations, elapsed, float64(iterations)/elapsed.Seconds())
}

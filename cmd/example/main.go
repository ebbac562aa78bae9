package main

import (
	"bytes"
	"fmt"

	"github.com/chronnie/hpack"
)

func main() {
	fmt.Println("🚀 Testing HPACK encode/decode round-trip...")

	encoder := hpack.New()
	decoder := hpack.New()
	if err := encoder.Init(hpack.DefaultHeaderTableSize); err != nil {
		fmt.Println("failed to init encoder:", err)
		return
	}
	if err := decoder.Init(hpack.DefaultHeaderTableSize); err != nil {
		fmt.Println("failed to init decoder:", err)
		return
	}

	headers := []hpack.Header{
		{Name: ":method", Value: "GET"},
		{Name: ":path", Value: "/sample/path"},
		{Name: ":authority", Value: "www.example.com"},
		{Name: "custom-key", Value: "custom-header"},
	}

	var buf bytes.Buffer
	for _, h := range headers {
		opts := hpack.Options{IndexPolicy: hpack.Incremental, EncodeValue: true}
		n, err := encoder.Encode(&buf, h, opts)
		if err != nil {
			fmt.Println("encode error:", err)
			return
		}
		fmt.Printf("⚡ encoded %s: %q -> %d bytes\n", h.Name, h.Value, n)
	}

	src := hpack.NewSource(buf.Bytes())
	for i := 0; i < len(headers); i++ {
		var out hpack.Header
		n, err := decoder.Decode(src, &out)
		if err != nil {
			fmt.Println("decode error:", err)
			return
		}
		fmt.Printf("✅ decoded %d bytes -> %s: %q\n", n, out.Name, out.Value)
	}
}

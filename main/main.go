package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"log"

	memedecoder "github.com/Gh05d/meme-decoder"
)

func appendLPString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func main() {
	// sample pump.fun create instruction: 8-byte discriminator, three
	// length-prefixed strings, three 32-byte keys
	buf := make([]byte, 8)
	buf = appendLPString(buf, "Demo Token")
	buf = appendLPString(buf, "DEMO")
	buf = appendLPString(buf, "https://example.com/demo.json")
	buf = append(buf, bytes.Repeat([]byte{0x01}, 32)...)
	buf = append(buf, bytes.Repeat([]byte{0x02}, 32)...)
	buf = append(buf, bytes.Repeat([]byte{0x03}, 32)...)

	meta, err := memedecoder.ParsePumpFunCreate(buf)
	if err != nil {
		log.Fatal(err)
	}
	out, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("decoded create instruction:\n%s", out)

	// the same buffer through the wrong parser fails cleanly
	if _, err := memedecoder.ParseCurveState(buf[:16]); err != nil {
		log.Printf("curve-state parse rejected: %v", err)
	}
}

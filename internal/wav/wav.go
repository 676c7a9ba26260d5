// Package wav serializes mono sample buffers as uncompressed 16-bit PCM
// WAV byte streams.
package wav

import (
	"bytes"
	"encoding/binary"
)

const headerSize = 44

// Encode writes the canonical 44-byte RIFF/WAVE header followed by the
// samples as little-endian signed 16-bit PCM. It is total: an empty buffer
// yields a valid header with a zero-length data chunk.
func Encode(samples []float64, sampleRate int) []byte {
	dataSize := uint32(len(samples) * 2)
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+int(dataSize)))

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36)+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))           // fmt chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))            // PCM
	binary.Write(buf, binary.LittleEndian, uint16(1))            // mono
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))   // sample rate
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate*2)) // byte rate
	binary.Write(buf, binary.LittleEndian, uint16(2))            // block align
	binary.Write(buf, binary.LittleEndian, uint16(16))           // bits per sample

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	for _, s := range samples {
		binary.Write(buf, binary.LittleEndian, pcm16(s))
	}
	return buf.Bytes()
}

// pcm16 clamps to [-1, 1] and converts with asymmetric scaling so that -1.0
// maps exactly to the minimum representable 16-bit value.
func pcm16(s float64) int16 {
	if s < -1 {
		s = -1
	}
	if s > 1 {
		s = 1
	}
	if s < 0 {
		return int16(s * 32768)
	}
	return int16(s * 32767)
}

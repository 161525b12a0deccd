// Package wav 把裸 PCM 数据包装成标准 RIFF/WAV 容器
package wav

import (
	"bytes"
	"encoding/binary"
)

// HeaderSize 标准 WAV 头固定 44 字节
const HeaderSize = 44

// Encode 给裸 PCM 加上 WAV 头，相同输入永远产出相同字节
func Encode(pcm []byte, channels, bitsPerSample, sampleRate int) []byte {
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(pcm)))
	buf.WriteString("RIFF")
	writeU32(buf, uint32(HeaderSize-8+len(pcm)))
	buf.WriteString("WAVE")

	// fmt 块：固定 16 字节，编码方式 1 代表未压缩 PCM
	buf.WriteString("fmt ")
	writeU32(buf, 16)
	writeU16(buf, 1)
	writeU16(buf, uint16(channels))
	writeU32(buf, uint32(sampleRate))
	writeU32(buf, uint32(byteRate))
	writeU16(buf, uint16(blockAlign))
	writeU16(buf, uint16(bitsPerSample))

	buf.WriteString("data")
	writeU32(buf, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

func writeU16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

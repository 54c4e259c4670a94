package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWAV assembles a minimal RIFF/WAVE file around the given PCM payload.
func buildWAV(sampleRate int, channels int, bitDepth int, pcm []byte) []byte {
	var buf []byte
	buf = append(buf, "RIFF"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(36+len(pcm)))
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = binary.LittleEndian.AppendUint32(buf, 16)
	buf = binary.LittleEndian.AppendUint16(buf, 1) // PCM
	buf = binary.LittleEndian.AppendUint16(buf, uint16(channels))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(sampleRate))
	byteRate := sampleRate * channels * bitDepth / 8
	buf = binary.LittleEndian.AppendUint32(buf, uint32(byteRate))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(channels*bitDepth/8))
	buf = binary.LittleEndian.AppendUint16(buf, uint16(bitDepth))

	buf = append(buf, "data"...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(pcm)))
	buf = append(buf, pcm...)
	return buf
}

func TestParseWAV(t *testing.T) {
	pcm := []byte{0x01, 0x02, 0x03, 0x04}
	format, data, err := parseWAV(buildWAV(44100, 2, 16, pcm))
	require.NoError(t, err)

	assert.Equal(t, 44100, format.SampleRate)
	assert.Equal(t, 2, format.Channels)
	assert.Equal(t, 16, format.BitDepth)
	assert.Equal(t, pcm, data)
}

func TestParseWAVRejectsGarbage(t *testing.T) {
	_, _, err := parseWAV([]byte("not a wav file at all"))
	assert.Error(t, err)

	_, _, err = parseWAV([]byte("RIFF\x00\x00\x00\x00JUNK"))
	assert.Error(t, err)
}

func TestParseWAVSkipsUnknownChunks(t *testing.T) {
	pcm := []byte{0xAA, 0xBB}
	wav := buildWAV(8000, 1, 16, pcm)

	// Splice a LIST chunk between fmt and data.
	list := append([]byte("LIST"), 0x04, 0x00, 0x00, 0x00, 'i', 'n', 'f', 'o')
	spliced := append([]byte{}, wav[:36]...)
	spliced = append(spliced, list...)
	spliced = append(spliced, wav[36:]...)

	format, data, err := parseWAV(spliced)
	require.NoError(t, err)
	assert.Equal(t, 8000, format.SampleRate)
	assert.Equal(t, pcm, data)
}

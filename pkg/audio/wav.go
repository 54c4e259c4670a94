package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// wavFormat holds WAV file format information
type wavFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// parseWAV parses a WAV file and returns the format and raw PCM data.
func parseWAV(data []byte) (wavFormat, []byte, error) {
	reader := bytes.NewReader(data)

	riff := make([]byte, 4)
	if _, err := io.ReadFull(reader, riff); err != nil {
		return wavFormat{}, nil, fmt.Errorf("read RIFF header: %w", err)
	}
	if string(riff) != "RIFF" {
		return wavFormat{}, nil, fmt.Errorf("not a RIFF file")
	}

	// Skip file size
	reader.Seek(4, io.SeekCurrent)

	wave := make([]byte, 4)
	if _, err := io.ReadFull(reader, wave); err != nil {
		return wavFormat{}, nil, fmt.Errorf("read WAVE header: %w", err)
	}
	if string(wave) != "WAVE" {
		return wavFormat{}, nil, fmt.Errorf("not a WAVE file")
	}

	format := wavFormat{}
	var dataStart int64
	var dataSize uint32

	// Walk the chunks until the data chunk is found
	for {
		chunkID := make([]byte, 4)
		if _, err := io.ReadFull(reader, chunkID); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return wavFormat{}, nil, err
		}

		var chunkSize uint32
		if err := binary.Read(reader, binary.LittleEndian, &chunkSize); err != nil {
			return wavFormat{}, nil, err
		}

		switch string(chunkID) {
		case "fmt ":
			var audioFormat, numChannels uint16
			var rate uint32
			binary.Read(reader, binary.LittleEndian, &audioFormat)
			binary.Read(reader, binary.LittleEndian, &numChannels)
			binary.Read(reader, binary.LittleEndian, &rate)
			format.Channels = int(numChannels)
			format.SampleRate = int(rate)

			// Skip byte rate and block align
			reader.Seek(6, io.SeekCurrent)

			var bitsPerSample uint16
			binary.Read(reader, binary.LittleEndian, &bitsPerSample)
			format.BitDepth = int(bitsPerSample)

			// Skip any extra format bytes
			if remaining := int64(chunkSize) - 16; remaining > 0 {
				reader.Seek(remaining, io.SeekCurrent)
			}
		case "data":
			dataStart, _ = reader.Seek(0, io.SeekCurrent)
			dataSize = chunkSize
		default:
			reader.Seek(int64(chunkSize), io.SeekCurrent)
		}

		if dataSize > 0 {
			break
		}
	}

	if dataSize == 0 {
		return wavFormat{}, nil, fmt.Errorf("no data chunk found")
	}
	if format.SampleRate == 0 || format.Channels == 0 {
		return wavFormat{}, nil, fmt.Errorf("no fmt chunk found")
	}

	audioData := make([]byte, dataSize)
	reader.Seek(dataStart, io.SeekStart)
	if _, err := io.ReadFull(reader, audioData); err != nil {
		return wavFormat{}, nil, fmt.Errorf("read audio data: %w", err)
	}

	return format, audioData, nil
}

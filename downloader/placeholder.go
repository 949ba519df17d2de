package downloader

// Silent MPEG-1 Layer III frames: 128 kbps, 44.1 kHz, no padding, stereo.
const (
	frameSize  = 417
	frameCount = 38
)

var frameHeader = [4]byte{0xFF, 0xFB, 0x90, 0x00}

// Silence returns about one second of silent MP3.
func Silence() []byte {
	data := make([]byte, frameSize*frameCount)
	for i := 0; i < frameCount; i++ {
		copy(data[i*frameSize:], frameHeader[:])
	}
	return data
}

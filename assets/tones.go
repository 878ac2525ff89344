package assets

import "math"

// fadeSeconds is the linear fade-out at the end of each tone, long enough to
// avoid an audible click when the wave stops.
const fadeSeconds = 0.01

// SquareWave synthesizes a square-wave tone as 16-bit little-endian stereo
// PCM, the format ebiten's audio players consume.
func SquareWave(sampleRate int, frequency, seconds, volume float64) []byte {
	frames := int(float64(sampleRate) * seconds)
	if frames <= 0 || frequency <= 0 {
		return nil
	}
	fadeFrames := int(float64(sampleRate) * fadeSeconds)

	buf := make([]byte, frames*4)
	period := float64(sampleRate) / frequency
	for i := 0; i < frames; i++ {
		amp := volume
		if remaining := frames - i; remaining < fadeFrames {
			amp *= float64(remaining) / float64(fadeFrames)
		}

		sample := amp
		if math.Mod(float64(i), period) >= period/2 {
			sample = -amp
		}

		v := int16(sample * math.MaxInt16)
		buf[4*i] = byte(v)
		buf[4*i+1] = byte(v >> 8)
		buf[4*i+2] = byte(v)
		buf[4*i+3] = byte(v >> 8)
	}
	return buf
}

// Package wavfile writes and reads mono RIFF/WAVE files for sample buffers
// in the [-1, 1] full-scale convention.
//
// Three encodings are supported, selected by [BitDepth]:
//
//   - [BitDepth16]: 16-bit signed PCM
//   - [BitDepth32]: 32-bit signed PCM
//   - [BitDepthFloat]: 32-bit IEEE float, samples passed through unscaled
//
// Integer encodings clamp to [-1, 1], scale by the largest positive code
// and round to the nearest integer, so a decoded sample lies within half a
// quantization step of the clamped input.
package wavfile

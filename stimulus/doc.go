// Package stimulus builds short audio test signals and combines them.
//
// A [Stimulus] is created with a duration and a sample rate, filled by
// exactly one generator (PureTone, Noise, Chirp or Silence), optionally
// shaped with Taper or Normalize, combined with [Concat] and [Repeat] and
// finally exported as a WAV file or a plot:
//
//	tone, _ := stimulus.New(0.1, 44100)
//	_ = tone.PureTone(1000)
//	gap, _ := stimulus.New(0.5, 44100)
//	_ = gap.Silence()
//	pair, _ := stimulus.Concat(tone, gap)
//	train, _ := stimulus.Repeat(3, pair)
//	_ = train.SaveWAV("train.wav", wavfile.BitDepth16)
//
// All generators evaluate sample i at t = i / sampleRate. TimePoints spans
// [0, length] inclusive and is meant as a plotting axis.
//
// Noise is uniform in [-1, 1], the same full-scale range the WAV encoder
// maps to the integer code range. Unless a stimulus is created WithSeed or
// WithSource, Noise continues a process-wide stream and never repeats a
// buffer.
//
// Combinators never modify their operands, and accessors return copies, so
// a Stimulus never shares its buffer with another value.
package stimulus

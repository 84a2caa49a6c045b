// Package spectrum computes short-time power spectra of sample buffers.
//
// FFTs are delegated to algo-fft; bin power is evaluated with the
// SIMD-dispatched kernels of algo-vecmath.
package spectrum

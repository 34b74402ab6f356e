// SPDX-License-Identifier: EPL-2.0

// Package speech turns text into audio for the studio.
//
// A Request names a voice and an emotion from the built-in catalog plus a
// speed and pitch. The Generator validates it and returns a stereo
// SampleBuffer whose length follows EstimateDuration: 15 characters per
// second at speed 1.
//
//	g, _ := speech.NewGenerator()
//	req := speech.NewRequest("Hello there")
//	req.Voice = "female-narrative"
//	data, err := g.GenerateWAV(ctx, req)
//
// WriteWAV streams the same file to an io.Writer without holding the samples.
// The generator does not synthesise speech yet; the buffer is silent.
package speech

// SPDX-License-Identifier: EPL-2.0

package speech_test

import (
	"context"
	"fmt"

	"github.com/ik5/audiostudio/speech"
)

func ExampleGenerator_Generate() {
	g, err := speech.NewGenerator(speech.WithSampleRate(16000))
	if err != nil {
		fmt.Println(err)
		return
	}

	req := speech.NewRequest("The quick brown fox jumps over the lazy dog")
	req.Voice = "female-narrative"
	req.Speed = 1.5

	buf, err := g.Generate(context.Background(), req)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(buf.NumChannels(), buf.Frames(), buf.Duration().Round(1e6))
	// Output: 2 30577 1.911s
}

func ExampleEstimateDuration() {
	fmt.Println(speech.EstimateDuration("Thirty characters of narration", 1))
	// Output: 2s
}

func ExampleRequest_Validate() {
	req := speech.NewRequest("hello")
	req.Emotion = "grumpy"
	fmt.Println(req.Validate())
	// Output: invalid speech request: unknown emotion "grumpy"
}

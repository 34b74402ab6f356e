// SPDX-License-Identifier: EPL-2.0

package speech

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Voice is one entry of the voice catalog.
type Voice struct {
	ID     string
	Name   string
	Gender Gender
	Style  string
}

type Emotion struct {
	ID   string
	Name string
}

const (
	DefaultVoice   = "male-deep"
	DefaultEmotion = "neutral"
)

var voices = []Voice{
	{ID: "male-deep", Name: "Deep Male", Gender: Male, Style: "deep"},
	{ID: "male-neutral", Name: "Neutral Male", Gender: Male, Style: "neutral"},
	{ID: "male-energetic", Name: "Energetic Male", Gender: Male, Style: "energetic"},
	{ID: "male-narrative", Name: "Narrative Male", Gender: Male, Style: "narrative"},
	{ID: "female-soft", Name: "Soft Female", Gender: Female, Style: "soft"},
	{ID: "female-powerful", Name: "Powerful Female", Gender: Female, Style: "powerful"},
	{ID: "female-dramatic", Name: "Dramatic Female", Gender: Female, Style: "dramatic"},
	{ID: "female-narrative", Name: "Narrative Female", Gender: Female, Style: "narrative"},
}

var emotions = []Emotion{
	{ID: "neutral", Name: "Neutral"},
	{ID: "happy", Name: "Happy"},
	{ID: "sad", Name: "Sad"},
	{ID: "intense", Name: "Intense"},
	{ID: "mysterious", Name: "Mysterious"},
	{ID: "epic", Name: "Epic"},
}

// Voices returns the catalog in display order.
func Voices() []Voice {
	return append([]Voice(nil), voices...)
}

func Emotions() []Emotion {
	return append([]Emotion(nil), emotions...)
}

func LookupVoice(id string) (Voice, bool) {
	for _, v := range voices {
		if v.ID == id {
			return v, true
		}
	}
	return Voice{}, false
}

func LookupEmotion(id string) (Emotion, bool) {
	for _, e := range emotions {
		if e.ID == id {
			return e, true
		}
	}
	return Emotion{}, false
}

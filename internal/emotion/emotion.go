package emotion

// Label identifies one of the six reference emotions.
type Label string

const (
	Sadness   Label = "sadness"
	Happiness Label = "happiness"
	Fear      Label = "fear"
	Anger     Label = "anger"
	Surprise  Label = "surprise"
	Disgust   Label = "disgust"
)

// All returns the six labels in their fixed enumeration order. The order is
// load-bearing: scoring breaks ties in favor of the earlier label.
func All() []Label {
	return []Label{Sadness, Happiness, Fear, Anger, Surprise, Disgust}
}

// Score is one label's raw dot-product similarity against the input text and
// its percentage relative to the highest raw score.
type Score struct {
	Label   Label
	Raw     float32
	Percent float32
}

// Result is the outcome of classifying one input text. It always carries
// exactly six scores, in enumeration order. Never persisted.
type Result struct {
	Scores     []Score
	Best       Label
	Confidence float32 // normalized percentage of Best
	Confident  bool
}

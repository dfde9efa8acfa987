package domain

// Mood is one of the six emotion categories the classifier can predict.
type Mood string

const (
	MoodSadness  Mood = "sadness"
	MoodJoy      Mood = "joy"
	MoodLove     Mood = "love"
	MoodAnger    Mood = "anger"
	MoodFear     Mood = "fear"
	MoodSurprise Mood = "surprise"
)

// moodByLabel maps the classifier's integer output to a Mood.
// The order is fixed by the training labels and must not change.
var moodByLabel = [...]Mood{
	MoodSadness,
	MoodJoy,
	MoodLove,
	MoodAnger,
	MoodFear,
	MoodSurprise,
}

// MoodFromLabel translates a raw classifier label into a Mood.
// Labels outside [0,5] fall back to joy.
func MoodFromLabel(label int) Mood {
	if label < 0 || label >= len(moodByLabel) {
		return MoodJoy
	}
	return moodByLabel[label]
}

// Preference is the caller's stated listening preference.
type Preference string

const (
	PreferenceMatch  Preference = "match"
	PreferenceUplift Preference = "uplift"
)

// ParsePreference maps a raw request value to a Preference.
// Anything other than "uplift" behaves as "match".
func ParsePreference(raw string) Preference {
	if raw == string(PreferenceUplift) {
		return PreferenceUplift
	}
	return PreferenceMatch
}

// SearchMood is the mood actually used to search for tracks. It is usually
// the predicted Mood, but the uplift preference can replace a negative mood
// with the synthetic value "uplift".
type SearchMood string

// SearchMoodUplift is the synthetic override mood requested via PreferenceUplift.
const SearchMoodUplift SearchMood = "uplift"

// ResolveSearchMood decides the effective search mood for a prediction.
// The uplift override applies only to the negative moods; every other
// combination passes the predicted mood through unchanged.
func ResolveSearchMood(mood Mood, pref Preference) SearchMood {
	if pref == PreferenceUplift {
		switch mood {
		case MoodSadness, MoodAnger, MoodFear:
			return SearchMoodUplift
		}
	}
	return SearchMood(mood)
}

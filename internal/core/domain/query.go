package domain

const (
	defaultMoodKeyword     = "happy"
	defaultLanguageKeyword = "english"
)

// moodKeywords maps each search mood to the keyword used in provider queries.
var moodKeywords = map[SearchMood]string{
	SearchMood(MoodJoy):      "happy",
	SearchMood(MoodSadness):  "sad",
	SearchMood(MoodAnger):    "angry",
	SearchMood(MoodLove):     "love",
	SearchMood(MoodFear):     "dark",
	SearchMood(MoodSurprise): "surprise",
	SearchMoodUplift:         "uplifting",
}

// languageKeywords maps request language codes to search keywords.
var languageKeywords = map[string]string{
	"en": "english",
	"te": "telugu",
	"hi": "hindi",
}

// BuildSearchQuery composes the provider search string, e.g. "happy telugu".
// Unknown moods fall back to "happy" and unknown language codes to "english",
// so the result never has an empty segment.
func BuildSearchQuery(mood SearchMood, language string) string {
	moodKeyword, ok := moodKeywords[mood]
	if !ok {
		moodKeyword = defaultMoodKeyword
	}

	langKeyword, ok := languageKeywords[language]
	if !ok {
		langKeyword = defaultLanguageKeyword
	}

	return moodKeyword + " " + langKeyword
}

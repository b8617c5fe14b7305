package insights

// Fixed instruction prompts, one per artifact kind. The transcript text
// is always the only user-supplied input; everything else is pinned here
// so regeneration is deterministic in shape.
const (
	summaryPrompt = "Summarize the following transcription into concise, professional bullet points."

	flashcardsPrompt = "Generate 5-8 flashcards (question and answer) based on the following text. " +
		"Return ONLY a JSON object with a 'flashcards' key containing an array of objects with " +
		"'question' and 'answer' keys. Do not include markdown formatting or other text."

	quizPrompt = "Generate a 5-question multiple choice quiz based on the following text. " +
		"Return ONLY a JSON object with a 'quiz' key containing an array of objects with keys: " +
		"'question', 'options' (array of 4 strings), 'correctAnswer' (string matching one option), " +
		"and 'explanation'. Do not include markdown formatting or other text."
)

const (
	summaryTemperature    = 0.5
	flashcardsTemperature = 0.7
	quizTemperature       = 0.7
)

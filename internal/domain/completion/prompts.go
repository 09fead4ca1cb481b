package completion

import (
	"fmt"
	"strings"
)

const connectionTestPrompt = "Test connection"

const imageAnalysisPrompt = `Analyze this image comprehensively and provide a detailed JSON response:
{
    "description": "Detailed description of what you see in the image",
    "objects": ["list", "of", "detected", "objects"],
    "colors": ["dominant", "colors", "present"],
    "text_detected": "any visible text in the image",
    "mood": "overall mood or atmosphere",
    "composition": "description of visual composition",
    "suggestions": "insights or potential improvements",
    "confidence": 0.95
}

Ensure the response is valid JSON format.`

const sentimentPromptTemplate = `Analyze the sentiment and characteristics of this text:

Text: "%s"

Provide a JSON response with:
{
    "overall_sentiment": "positive/negative/neutral",
    "confidence_score": 0.85,
    "emotions": ["joy", "excitement", "concern"],
    "key_phrases": ["important phrases from the text"],
    "tone": "formal/informal/conversational/etc",
    "subjectivity": "objective/subjective",
    "intensity": "low/medium/high"
}`

const summaryPromptTemplate = `Summarize this text and provide analysis:

Text: "%s"

Provide a JSON response with:
{
    "summary": "Concise summary of the main points",
    "key_points": ["main", "points", "extracted"],
    "themes": ["central", "themes", "identified"],
    "word_count_original": %d,
    "reading_time_minutes": 2,
    "complexity": "simple/moderate/complex"
}`

const comprehensivePromptTemplate = `Provide a comprehensive analysis of this text:

Text: "%s"

Analyze and provide JSON response with:
{
    "sentiment": {
        "overall": "positive/negative/neutral",
        "confidence": 0.85,
        "emotions": ["detected", "emotions"]
    },
    "summary": "Brief but comprehensive summary",
    "key_topics": ["main", "topics", "discussed"],
    "writing_style": "Description of writing style and approach",
    "readability": "easy/moderate/difficult",
    "target_audience": "Who this seems written for",
    "intent": "What the author seems to want to achieve",
    "entities": ["people", "places", "organizations", "mentioned"],
    "suggestions": "Potential improvements or insights"
}`

const chatInstruction = "Please provide a helpful, conversational response. If there's context about previously analyzed content, refer to it naturally in your response. Be engaging and informative."

func sentimentPrompt(text string) string {
	return fmt.Sprintf(sentimentPromptTemplate, text)
}

func summaryPrompt(text string) string {
	return fmt.Sprintf(summaryPromptTemplate, text, len(strings.Fields(text)))
}

func comprehensivePrompt(text string) string {
	return fmt.Sprintf(comprehensivePromptTemplate, text)
}

// chatPrompt places the context block (when present) before the user message.
func chatPrompt(message, history string) string {
	var b strings.Builder
	if history != "" {
		b.WriteString("Context: ")
		b.WriteString(history)
		b.WriteString("\n\n")
	}
	b.WriteString("User message: ")
	b.WriteString(message)
	b.WriteString("\n\n")
	b.WriteString(chatInstruction)
	return b.String()
}

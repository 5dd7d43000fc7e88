package personalize

import (
	"fmt"

	"fluidcontent/internal/core"
)

// adaptationPromptTemplate is the instruction block for content adaptation.
// Placeholders, title and body are interpolated verbatim; the declared JSON
// keys must match core.AdaptedContent.
const adaptationPromptTemplate = `You are an advanced AI assistant specialized in transforming and adapting digital content for FluidContent. Your goal is to make the content more engaging, personalized and accessible for the end user.

GIVEN THE FOLLOWING USER PROFILE:
Name: %s
Age: %s
Interests: %s
Preferences: %s

AND THE FOLLOWING ORIGINAL CONTENT:
Title: %s
Description: %s
Text:
---
%s
---

YOUR TASK IS TO:
1. ADAPT THE TEXT: Adjust the tone, style, language complexity and, where necessary, the length of the original text to best align with the user's name (if relevant for a personal touch), age, interests and preferences.
For example, you may open the text with a personalized greeting if the tone permits and a name is provided.
For a younger user, use simpler and more direct language. For an adult user with formal preferences, keep a professional tone.
2. EXTRACT KEY TAKEAWAYS: Identify and return 3 to 5 key points or takeaways from the adapted content, as a list.
3. SUGGEST A NEW TITLE (optional): If you believe a different title would be more engaging for the user, suggest one.
4. SENTIMENT ANALYSIS (optional): Provide a brief sentiment label for the adapted text (e.g. Positive, Negative, Neutral, Informative).

REQUIRED RESPONSE FORMAT:
Return a structured JSON object with the following keys:
- "adapted_text": (string) The fully adapted text.
- "key_takeaways": (list of strings, optional) The extracted key points.
- "suggested_title": (string, optional) The suggested new title.
- "sentiment_analysis": (string, optional) The sentiment analysis.

IMPORTANT RULES:
- Preserve the factual accuracy of the original content.
- Do not invent information.
- Be creative but relevant.
- If a user preference conflicts with the nature of the content, use your best judgment to find a balance.
- The "adapted_text" output MUST be the complete text, ready to be shown to the user.`

// BuildAdaptationPrompt composes the full adaptation instruction for a
// profile and content pair. Pure: same input, same output string.
func BuildAdaptationPrompt(profile core.UserProfile, content core.ContentInput) string {
	fields := DescribeRequest(profile, content)
	return fmt.Sprintf(adaptationPromptTemplate,
		fields.UserName,
		fields.UserAge,
		fields.UserInterests,
		fields.UserPreferences,
		fields.ContentTitle,
		fields.ContentDescription,
		fields.OriginalText,
	)
}

package ai

import "fmt"

// assistantName is the scripted answer baked into the reply prompt for
// "what is your name" style questions. It lives in the template, not in a
// code branch.
const assistantName = "मिथुन"

const correctionTemplate = `Fix and improve this SANSKRIT sentence to make it grammatically correct and clear:
"%s"

Respond with only the corrected Sanskrit sentence, nothing else.`

const replyTemplate = `A person said in Sanskrit: "%s"

Respond appropriately in Sanskrit using Devanagari script. Give only the Sanskrit response, nothing else. No explanations, no English text, just the Sanskrit response.
Tip:If someone asks your name type %s .`

func correctionPrompt(text string) string {
	return fmt.Sprintf(correctionTemplate, text)
}

func replyPrompt(text string) string {
	return fmt.Sprintf(replyTemplate, text, assistantName)
}

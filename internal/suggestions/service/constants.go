package service

import (
	"fmt"

	"github.com/webcode-studio/studio-backend/internal/suggestions/llm"
)

const generateSystem = `You are a senior code reviewer for a browser-based code editor.
Given a source file, respond with exactly 3 actionable improvement suggestions
as a numbered list ("1.", "2.", "3."), one sentence each.
Do not add any other prose.`

const applySystem = `You are a code editing assistant for a browser-based code editor.
Apply the requested improvement to the source file.
Return ONLY the complete modified source code. No explanations, no markdown fences, no prose.`

func generatePrompt(source string) llm.Prompt {
	return llm.Prompt{
		System: generateSystem,
		User:   fmt.Sprintf("Here is the source code:\n\n%s\n\nReturn exactly 3 numbered suggestions.", source),
	}
}

func applyPrompt(source, suggestion string) llm.Prompt {
	return llm.Prompt{
		System: applySystem,
		User:   fmt.Sprintf("Source code:\n\n%s\n\nImprovement to apply:\n%s", source, suggestion),
	}
}

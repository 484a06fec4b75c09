package analysis

const bulletSystemPrompt = "You are an AI that outputs JSON."

const bulletPromptTemplate = `Analyze the following resume bullet points.
For each bullet, provide:
1. Impact Score (0-100) based on action verbs, numbers, and result clarity.
2. A very brief specific improvement suggestion.

Return STRICT JSON: { "bullets": [ { "text": "original text...", "score": 85, "suggestion": "..." }, ... ] }

Bullets:
%s`

// bulletExcerptLimit bounds how much experience text is sent to the provider.
const bulletExcerptLimit = 2000

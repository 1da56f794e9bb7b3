package qualify

import (
	"fmt"
	"strings"
)

// notProvided substitutes missing optional lead fields so identical leads
// always render identical prompts.
const notProvided = "Not provided"

const qualificationPromptTemplate = `You are LeadGenie, an expert sales lead qualification assistant.

ROLE: Analyze incoming sales leads and provide qualification scores.

TASK: Review the lead information and provide a structured analysis.

OUTPUT FORMAT (JSON only):
{
  "score": <number 0-100>,
  "category": "<Hot|Warm|Cold>",
  "confidence": <number 0.0-1.0>,
  "reasoning": "<brief explanation>",
  "buying_signals": ["<signal1>", "<signal2>"],
  "risk_factors": ["<risk1>", "<risk2>"],
  "next_actions": ["<action1>", "<action2>"]
}

EXAMPLES:
{
  "score": 95,
  "category": "Hot",
  "confidence": 0.9,
  "reasoning": "The lead has a clear budget, a short timeline, and is looking for a solution that we provide.",
  "buying_signals": ["Budget mentioned", "Short timeline", "Good fit"],
  "risk_factors": [],
  "next_actions": ["Schedule a demo", "Send pricing information"]
}

LEAD TO ANALYZE:
Name: %s
Company: %s
Email: %s
Description: %s
Budget: %s
Timeline: %s

Analyze this lead and respond with ONLY the JSON format above:`

// BuildPrompt renders the qualification prompt for a lead. It is pure and
// deterministic: the same LeadInput always yields byte-identical output,
// which keeps processing logs reproducible and lets results be cached by
// lead identity.
func BuildPrompt(lead LeadInput) string {
	return fmt.Sprintf(qualificationPromptTemplate,
		orNotProvided(lead.Name),
		orNotProvided(lead.Company),
		orNotProvided(lead.Email),
		orNotProvided(lead.Message),
		orNotProvided(lead.Budget),
		orNotProvided(lead.Timeline),
	)
}

func orNotProvided(value string) string {
	if strings.TrimSpace(value) == "" {
		return notProvided
	}
	return value
}

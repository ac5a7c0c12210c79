package ai

import "fmt"

const analysisPrompt = `
You are an AI recruitment assistant. Below are the details of an application:

Resume Text:
%s

Cover Letter:
%s

Job Description:
%s

Based on the above, please provide:
1. A suggestion paragraph with insights on the candidate.
2. A JSON object with the following keys:
   - "matchScore": number (0-100, indicating how well the candidate fits the job)
   - "keySkills": array of strings (important skills identified)
   - "experienceSummary": string (brief summary of relevant experience)

Output the response in the following JSON format:
{
  "suggestion": "Your suggestion here...",
  "stats": {
    "matchScore": 85,
    "keySkills": ["JavaScript", "React", "TypeScript"],
    "experienceSummary": "5 years of relevant experience in front-end development..."
  }
}
`

// BuildPrompt embeds the application material into the analysis prompt.
func BuildPrompt(resumeText, coverLetter, jobDescription string) string {
	return fmt.Sprintf(analysisPrompt, resumeText, coverLetter, jobDescription)
}

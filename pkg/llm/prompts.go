package llm

import (
	"fmt"
	"strings"
	"time"
)

const assistantSystemPrompt = `You are NexusMena AI, a specialized assistant for the NexusMena tech platform.
You have access to Global and Egyptian tech news, startups, events, and market data.
Your goal is to help users find information within the platform, summarize articles, or explain complex tech/financial concepts.
Be concise, professional, and helpful.
If provided with Context Data, prioritize that information.
Answer in the language the user speaks (English or Arabic).`

func summaryPrompt(text, lang string) string {
	if lang == "ar" {
		return fmt.Sprintf("لخّص النص التقني التالي في 3 نقاط رئيسية باللغة العربية:\n\n%s", text)
	}
	return fmt.Sprintf("Summarize the following tech content into 3 concise bullet points:\n\n%s", text)
}

func translatePrompt(text, targetLang string) string {
	langName := "English"
	if targetLang == "ar" {
		langName = "Arabic"
	}
	return fmt.Sprintf("Translate the following text to %s. Keep technical terms accurate and maintain the formatting (Markdown tables, lists, etc):\n\n%s", langName, text)
}

func marketPrompt(dataContext string) string {
	return fmt.Sprintf("You are a financial analyst specializing in Egyptian and Global tech markets. Analyze this data snapshot and give 2 sentences of insight:\n%s", dataContext)
}

func articleContentPrompt(url string) string {
	return fmt.Sprintf(`Read the article at: %s

Task: Extract the full text content.
Output: Clean Markdown format.

If you cannot access the URL directly, search for the article title on Google and extract the content from the search result or cache.`, url)
}

func reviewPrompt(title, description string) string {
	return fmt.Sprintf(`You are an expert editor. Review this submission:
Title: %s
Desc: %s

Task: Improve grammar, catchiness, and conciseness.

Output JSON Only:
{
    "improvedTitle": "string",
    "improvedDescription": "string",
    "feedback": "string"
}`, title, description)
}

func podcastPrompt(url string) string {
	return fmt.Sprintf(`You are a Podcast Analyst API.
Target: Analyze the content at this link: %s.

Task:
1. Use Google Search to find details/transcript/summary of this podcast episode.
2. Perform the analysis below.
3. Output VALID JSON only.

Metrics to analyze:
- Depth of Information
- Technical Level
- Authenticity
- Speakers' Expertise
- Clarity
- Engagement
- Relevance
- Bias and Objectivity
- Practical Applications
- Pacing
- Emotional Impact
- Originality

**JSON OUTPUT FORMAT**:
{
    "podcastName": "string",
    "episodeTitle": "string",
    "score": 8,
    "summary": "string (A concise paragraph)",
    "metrics": [
        { "name": "Depth of Information", "finding": "string" },
        ... (repeat for all metrics)
    ],
    "recommendation": "string"
}

If you cannot access the link, try to find the podcast by searching its likely title in the URL.`, url)
}

func trendsPrompt(items []TrendInput) string {
	var sb strings.Builder
	for _, it := range items {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", it.Title, it.Description))
	}

	return fmt.Sprintf(`You are a Chief Editor for a major Tech Publication.

Task: Analyze the following list of news headlines collected TODAY.
Identify the most popular topics across these specific categories:
1. Business
2. Finance
3. Technology
4. AI
5. Entrepreneurship
6. Investment

INPUT DATA:
%s
INSTRUCTIONS:
- Synthesize the information. Don't just list headlines. Find the *theme* (e.g., "Generative AI Regulation" or "Fintech Consolidation").
- Provide a concise summary for each topic.
- Determine the general sentiment (Positive/Neutral/Mixed).
- Write a 2-sentence Executive Summary of the day's tech landscape.

**JSON OUTPUT FORMAT**:
{
    "date": "%s",
    "executiveSummary": "string",
    "topics": [
        { "category": "AI", "topic": "string", "summary": "string", "sentiment": "string" },
        { "category": "Business", "topic": "string", "summary": "string", "sentiment": "string" },
        ... (one for each category if data exists)
    ]
}`, sb.String(), time.Now().Format("2006-01-02"))
}

func scrapePrompt(sourceURL, sourceName string) string {
	return fmt.Sprintf(`You are a Real-Time News Aggregator.
Target: %s (%s)

Task: Find the top 2 most recent articles from this source published TODAY or YESTERDAY.

Focus Topics:
- Business
- Finance
- Technology
- AI (Artificial Intelligence)
- Entrepreneurship
- Investment

Internal Search Strategy:
- Use Google Search to find: "latest %s articles Business Technology AI"
- Filter results for publication date within the last 24 hours.

**JSON OUTPUT FORMAT**:
[
    {
      "title": "string",
      "summary": "string",
      "date": "YYYY-MM-DD",
      "url": "https://valid-deep-link-to-article",
      "source": "%s"
    }
]

Return ONLY valid JSON. If no *recent* (last 48h) articles are found, return empty array [].`, sourceName, sourceURL, sourceName, sourceName)
}

func fetchLatestPrompt(url string) string {
	return fmt.Sprintf(`You are a Content Discovery API.
Target Source: %s

Task: Find the SINGLE latest news article or podcast episode from this source using Google Search.

Instructions:
1. Search for "latest news %s %d" or "latest episode %s".
2. Identify the most recent item (must be from last 7 days).
3. Return ONLY a JSON object. Do not converse.

JSON Format:
{
   "title": "string",
   "description": "string",
   "source": "string (Source Name)",
   "specificUrl": "https://valid-deep-link",
   "date": "YYYY-MM-DD",
   "category": "string (latest, startup, podcasts, events)",
   "duration": "string (optional)",
   "summaryPoints": ["point 1", "point 2"],
   "youtubeUrl": "string (optional)",
   "spotifyUrl": "string (optional)"
}

If no specific item is found, return null.`, url, url, time.Now().Year(), url)
}

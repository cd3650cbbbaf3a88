package pipeline

import (
	"fmt"
	"strings"

	"github.com/fwojciec/websearch"
)

// snippetLimit caps how much of each result snippet the selection prompt
// includes.
const snippetLimit = 200

const queryPromptTemplate = `You are an expert at creating precise web search queries. Convert the user's question into an optimal search query that will find the most relevant results.

Guidelines:
- Use specific keywords and terms
- Remove unnecessary words like "what", "how", "can you"
- Include important context
- Keep it concise but comprehensive

Examples:
Question: "What is the capital of France?"
Query: capital France

Question: "How do I install Docker on Ubuntu?"
Query: install Docker Ubuntu tutorial

Question: "What are the latest developments in AI?"
Query: latest AI developments 2024

User's question: `

// QueryPrompt builds the instruction that turns a question into a concise
// search query.
func QueryPrompt(question string) string {
	return queryPromptTemplate + question
}

// SelectionPrompt builds the instruction that asks the model to pick the
// single most relevant result, answering in the exact two-line
// "Title:" / "URL:" format ParseSelection expects.
func SelectionPrompt(question, query string, results []websearch.Result) string {
	var sb strings.Builder
	for i, r := range results {
		snippet := websearch.CutRunes(r.Snippet, snippetLimit)
		fmt.Fprintf(&sb, "%d. %s - %s\n   %s...\n", i+1, r.Title, r.URL, snippet)
	}

	return fmt.Sprintf(`You are an expert at evaluating search results. Based on the original question, select the MOST RELEVANT result.

Original Question: %s
Search Query: %s

Search Results:
%s
Respond with ONLY the title and URL in this exact format:
Title: [exact title from results]
URL: [exact URL from results]`, question, query, sb.String())
}

// SynthesisPrompt builds the instruction that produces the final answer from
// the retrieved page content.
func SynthesisPrompt(question, query, title, content string) string {
	return fmt.Sprintf(`You are a knowledgeable assistant providing accurate information based on web content.

Original Question: %s
Search Query: %s
Source: %s

Retrieved Content:
%s

Instructions:
- Provide a comprehensive but concise answer to the user's question
- Use information from the retrieved content
- Cite specific details when relevant
- If the content doesn't fully answer the question, mention what information is available
- Format your response clearly with bullet points or sections when appropriate
- Be helpful and informative`, question, query, title, content)
}

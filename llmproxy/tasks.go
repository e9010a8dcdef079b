package llmproxy

import (
	"fmt"
	"slices"
	"strings"
)

// Task names accepted by Forward.
const (
	TaskSummarize = "summarize"
	TaskDebate    = "debate"
	TaskSpamCheck = "spam-check"
)

type task struct {
	maxChars    int
	maxTokens   int
	temperature float32
	system      func(opts map[string]string) string
	user        func(text string, opts map[string]string) string
}

type lengthSpec struct {
	instruction string
	maxChars    int
	maxTokens   int
}

var summaryLengths = map[string]lengthSpec{
	"short": {
		instruction: "Create a concise bullet-point summary (100-200 words) of the following document. Focus only on the most critical points and main findings.",
		maxChars:    10000,
		maxTokens:   500,
	},
	"medium": {
		instruction: "Create an executive summary (300-500 words) of the following document. Include main sections, key findings, methodology and recommendations.",
		maxChars:    15000,
		maxTokens:   1000,
	},
	"long": {
		instruction: "Create a comprehensive summary (800+ words) of the following document. Include detailed analysis of all sections, findings, methodology, implications and recommendations.",
		maxChars:    20000,
		maxTokens:   2000,
	},
}

var debateStyles = map[string]string{
	"kind":      "You are a supportive debate coach. Be encouraging and constructive while providing honest feedback. Focus on strengths first, then point out areas for improvement.",
	"professor": "You are a logical debate professor. Be educational and analytical. Give detailed reasoning for your scores and help the debater understand logical principles.",
	"devil":     "You are a sharp debate critic playing devil's advocate. Challenge arguments directly and rigorously but remain respectful. Strengthen the debater's skills through tough but fair critique.",
}

const debateFormat = `Evaluate this debate argument critically and provide honest scores.

Topic: %q
Argument: %q

Reply in this exact format:

RESPONSE: [a 2-4 sentence counterargument]

SCORES:
Logical Consistency: x/5 - [reason]
Persuasiveness: x/5 - [reason]
Factual Accuracy: x/5 - [reason]
Structural Coherence: x/5 - [reason]
Rebuttal Resilience: x/5 - [reason]

FEEDBACK: [one specific improvement suggestion]`

const spamSystem = `You are an email security analyst. Classify the email the user pastes as spam, phishing or legitimate.
Reply with JSON only: {"verdict":"spam|phishing|legitimate","confidence":0-100,"reasons":["..."]}`

var tasks = map[string]task{
	TaskSummarize: {
		temperature: 0.3,
		system: func(map[string]string) string {
			return "You summarize documents accurately without adding information that is not in the source."
		},
		user: func(text string, opts map[string]string) string {
			return summaryLength(opts).instruction + "\n\n" + text
		},
	},
	TaskDebate: {
		maxChars:    4000,
		maxTokens:   1500,
		temperature: 0.7,
		system: func(opts map[string]string) string {
			if s, ok := debateStyles[opts["style"]]; ok {
				return s
			}
			return debateStyles["professor"]
		},
		user: func(text string, opts map[string]string) string {
			return fmt.Sprintf(debateFormat, opts["topic"], text)
		},
	},
	TaskSpamCheck: {
		maxChars:    10000,
		maxTokens:   1024,
		temperature: 0,
		system:      func(map[string]string) string { return spamSystem },
		user:        func(text string, _ map[string]string) string { return text },
	},
}

func summaryLength(opts map[string]string) lengthSpec {
	if l, ok := summaryLengths[opts["length"]]; ok {
		return l
	}
	return summaryLengths["medium"]
}

// limits returns the input cap and token budget for t under opts.
func (t task) limits(name string, opts map[string]string) (maxChars, maxTokens int) {
	if name == TaskSummarize {
		l := summaryLength(opts)
		return l.maxChars, l.maxTokens
	}
	return t.maxChars, t.maxTokens
}

// Tasks lists the supported task names in sorted order.
func Tasks() []string {
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// KnownTask reports whether name is a supported task.
func KnownTask(name string) bool {
	_, ok := tasks[strings.TrimSpace(name)]
	return ok
}

package content

import "math/rand/v2"

var prompts = []string{
	"Describe what you're feeling right now.",
	"Write about a peaceful place you can imagine.",
	"List three things you're grateful for.",
	"What is one thing you can do to take care of yourself right now?",
	"Describe a happy memory in detail.",
}

func Prompts() []string {
	return append([]string(nil), prompts...)
}

// RandomPrompt draws a journal prompt. Repeats are allowed.
func RandomPrompt() string {
	return prompts[rand.IntN(len(prompts))]
}

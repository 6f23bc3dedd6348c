// Minimal OpenAI chat completion using the official Go SDK.
//
// Usage: go run . [prompt...]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

func main() {
	godotenv.Load()

	apiKey := os.Getenv("OPENAI_API_KEY")
	prompt := strings.Join(os.Args[1:], " ")
	if prompt == "" {
		prompt = "Explain Artificial Intelligence in one line."
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	resp, err := client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4oMini,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("🧠 OpenAI:", resp.Choices[0].Message.Content)
}

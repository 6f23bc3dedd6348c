// Minimal Anthropic Messages API call over plain HTTP.
//
// Usage: go run . [prompt...]
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const apiURL = "https://api.anthropic.com/v1/messages"

type request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type response struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func main() {
	godotenv.Load()

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	prompt := strings.Join(os.Args[1:], " ")
	if prompt == "" {
		prompt = "Explain Artificial Intelligence in one line."
	}

	body, _ := json.Marshal(request{
		Model:     "claude-3-opus-20240229",
		MaxTokens: 200,
		Messages:  []message{{Role: "user", Content: prompt}},
	})

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("x-api-key", apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("anthropic-version", "2023-06-01")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	defer res.Body.Close()

	var out response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		log.Fatal(err)
	}

	fmt.Println("🤖 Claude:", out.Content[0].Text)
}

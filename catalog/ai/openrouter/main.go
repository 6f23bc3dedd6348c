// Minimal OpenRouter chat completion over plain HTTP.
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

const apiURL = "https://openrouter.ai/api/v1/chat/completions"

type request struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type response struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

func main() {
	godotenv.Load()

	apiKey := os.Getenv("OPENROUTER_API_KEY")
	prompt := strings.Join(os.Args[1:], " ")
	if prompt == "" {
		prompt = "Explain Artificial Intelligence in one line."
	}

	body, _ := json.Marshal(request{
		Model:    "mistralai/mixtral-8x7b",
		Messages: []message{{Role: "user", Content: prompt}},
	})

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	defer res.Body.Close()

	var out response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		log.Fatal(err)
	}

	fmt.Println("🌍 OpenRouter:", out.Choices[0].Message.Content)
}

// Minimal Gemini generateContent call over plain HTTP.
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

const apiURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

type request struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type response struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func main() {
	godotenv.Load()

	apiKey := os.Getenv("GEMINI_API_KEY")
	prompt := strings.Join(os.Args[1:], " ")
	if prompt == "" {
		prompt = "Explain Artificial Intelligence in one line."
	}

	body, _ := json.Marshal(request{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})

	res, err := http.Post(apiURL+"?key="+apiKey, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatal(err)
	}
	defer res.Body.Close()

	var out response
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		log.Fatal(err)
	}

	fmt.Println("🌟 Gemini:", out.Candidates[0].Content.Parts[0].Text)
}

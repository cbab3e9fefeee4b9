package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"sciscroll/domain/content"
)

// ImgflipProvider captions meme templates through the Imgflip API.
// Requires account credentials.
type ImgflipProvider struct {
	baseURL  string
	username string
	password string
}

// NewImgflipProvider creates the provider, or nil without credentials.
func NewImgflipProvider(username, password string) *ImgflipProvider {
	if username == "" || password == "" {
		return nil
	}
	return &ImgflipProvider{
		baseURL:  "https://api.imgflip.com",
		username: username,
		password: password,
	}
}

type imgflipTemplates struct {
	Success bool `json:"success"`
	Data    struct {
		Memes []struct {
			ID       string `json:"id"`
			Name     string `json:"name"`
			BoxCount int    `json:"box_count"`
		} `json:"memes"`
	} `json:"data"`
}

type imgflipCaption struct {
	Success bool `json:"success"`
	Data    struct {
		URL string `json:"url"`
	} `json:"data"`
	ErrorMessage string `json:"error_message"`
}

// Search picks a two-box template and captions it with the planner's
// top and bottom text. Without captions there is nothing to render, so
// it returns nil and the caller falls back to mock media.
func (p *ImgflipProvider) Search(ctx context.Context, q Query) (*content.MediaPayload, error) {
	if q.TopText == "" && q.BottomText == "" {
		return nil, nil
	}

	templateID, templateName, err := p.pickTemplate(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"template_id": {templateID},
		"username":    {p.username},
		"password":    {p.password},
		"text0":       {q.TopText},
		"text1":       {q.BottomText},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/caption_image", strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var captioned imgflipCaption
	if err := json.NewDecoder(resp.Body).Decode(&captioned); err != nil {
		return nil, err
	}
	if !captioned.Success {
		return nil, fmt.Errorf("imgflip caption failed: %s", captioned.ErrorMessage)
	}

	return &content.MediaPayload{
		URL:         captioned.Data.URL,
		Source:      "Imgflip",
		Attribution: fmt.Sprintf("Meme generated with Imgflip template %q", templateName),
		Width:       intPtr(500),
		Height:      intPtr(500),
	}, nil
}

// pickTemplate returns the most popular two-box meme template.
func (p *ImgflipProvider) pickTemplate(ctx context.Context) (id, name string, err error) {
	var templates imgflipTemplates
	if err := getJSON(ctx, p.baseURL+"/get_memes", nil, &templates); err != nil {
		return "", "", err
	}
	for _, m := range templates.Data.Memes {
		if m.BoxCount == 2 {
			return m.ID, m.Name, nil
		}
	}
	return "", "", fmt.Errorf("no two-box meme template available")
}

func intPtr(v int) *int {
	return &v
}

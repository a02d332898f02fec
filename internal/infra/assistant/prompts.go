package assistant

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"lawyerup/internal/domain/entity"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

const newsPrompt = "Generate an array of 5 recent and relevant news articles for a legal professional. " +
	"Include a headline, a 2-3 sentence summary, a relevant stock image URL, the source URL, and a category " +
	"(e.g., 'Corporate Law', 'Criminal Justice', 'Legal Tech', 'Human Rights', 'Intellectual Property')."

const lawBotInstruction = "You are LawBot, an expert AI assistant specializing in international and common law. " +
	"Answer questions accurately and concisely. Cite relevant sections or acts where possible. " +
	"Your tone should be professional and helpful."

const recommendationTemplate = `As an expert legal matchmaking AI, your task is to recommend the top 3 most suitable lawyers for a client's specific case.

Client's Case Details:
- Case Type: %q
- Urgency: %q
- Description: %q

Available Lawyers:
%s

Analyze the lawyers based on the following criteria, in order of importance:
1. Specialization Match: The lawyer's specializations must closely match the client's case type. This is the most critical factor.
2. Success Rate: A higher success rate is strongly preferred.
3. Experience: More years of experience in relevant fields are better.
4. Price: A lower average fee per case is a positive factor but less important than expertise and success.

Your response must be a JSON object containing a single key "recommendations", which is an array of objects. Each object must have a "lawyerId" and a "rank" (from 1 to 3). Return only the top 3 matches in ranked order.`

// maxRecommendations is how many ranked lawyers the assistant may return.
const maxRecommendations = 3

var newsSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"articles": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"headline":  {Type: genai.TypeString},
					"summary":   {Type: genai.TypeString},
					"imageUrl":  {Type: genai.TypeString},
					"sourceUrl": {Type: genai.TypeString},
					"category":  {Type: genai.TypeString},
				},
				Required: []string{"headline", "summary", "imageUrl", "sourceUrl", "category"},
			},
		},
	},
	Required: []string{"articles"},
}

var recommendationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"recommendations": {
			Type:        genai.TypeArray,
			Description: "An array of the top 3 recommended lawyer objects, each with an ID and a rank.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"lawyerId": {Type: genai.TypeString},
					"rank":     {Type: genai.TypeNumber},
				},
				Required: []string{"lawyerId", "rank"},
			},
		},
	},
	Required: []string{"recommendations"},
}

// lawyerSummary is the reduced lawyer record shown to the model.
type lawyerSummary struct {
	ID              string `json:"id"`
	Specialization  string `json:"specialization"`
	ExperienceYears int    `json:"experienceYears"`
	SuccessRate     int    `json:"successRate"`
	AvgPrice        int    `json:"avgPrice"`
	Bio             string `json:"bio"`
}

func recommendationPrompt(tmpl *entity.CaseTemplate, lawyers []*entity.User) (string, error) {
	summaries := make([]lawyerSummary, 0, len(lawyers))
	for _, l := range lawyers {
		if !l.IsLawyer() {
			continue
		}

		summaries = append(summaries, lawyerSummary{
			ID:              l.ID,
			Specialization:  strings.Join(l.Lawyer.Specializations, ", "),
			ExperienceYears: l.Lawyer.ExperienceYears,
			SuccessRate:     l.Lawyer.SuccessRate(),
			AvgPrice:        l.Lawyer.AvgPrice,
			Bio:             l.Lawyer.Bio,
		})
	}

	if len(summaries) == 0 {
		return "", errors.New("no lawyers to rank")
	}

	data, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encode lawyers")
	}

	return fmt.Sprintf(recommendationTemplate, tmpl.CaseType, string(tmpl.Urgency), tmpl.Description, data), nil
}

// parseRecommendations decodes the model output, dropping entries without an id
// or with a rank outside 1..3, and orders the rest by rank.
func parseRecommendations(text string) ([]entity.Recommendation, error) {
	var payload struct {
		Recommendations []struct {
			LawyerID string  `json:"lawyerId"`
			Rank     float64 `json:"rank"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payload); err != nil {
		return nil, errors.Wrap(err, "decode recommendations")
	}

	recs := make([]entity.Recommendation, 0, len(payload.Recommendations))
	for _, r := range payload.Recommendations {
		rank := int(r.Rank)
		if r.LawyerID == "" || rank < 1 || rank > maxRecommendations {
			continue
		}

		recs = append(recs, entity.Recommendation{LawyerID: r.LawyerID, Rank: rank})
	}

	slices.SortStableFunc(recs, func(a, b entity.Recommendation) int { return a.Rank - b.Rank })

	return recs, nil
}

// parseNews decodes the model output and drops articles without a headline.
func parseNews(text string) ([]entity.NewsArticle, error) {
	var payload struct {
		Articles []entity.NewsArticle `json:"articles"`
	}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payload); err != nil {
		return nil, errors.Wrap(err, "decode news")
	}

	return slices.DeleteFunc(payload.Articles, func(a entity.NewsArticle) bool {
		return strings.TrimSpace(a.Headline) == ""
	}), nil
}

// stripCodeFence removes a ```json fence some model versions wrap JSON in.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	text = strings.TrimPrefix(text, "json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}

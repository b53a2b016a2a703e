package services

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"retroboard/internal/i18n"
	"retroboard/internal/models"
	"retroboard/internal/utils"
)

// SessionSummary 导出用的看板摘要
type SessionSummary struct {
	Language i18n.Language `json:"language"`
	Markdown string        `json:"markdown"`
	HTML     template.HTML `json:"html"`
}

// Summary renders the board column by column, most liked posts first, with
// the action items collected at the end. Giphy images are only shown while the
// session allows them. Labels left empty by the creator
// use the translated default for the column type.
func Summary(session *models.Session, lang i18n.Language) SessionSummary {
	var b strings.Builder

	name := i18n.Translate(lang, "SessionName", "defaultSessionName")
	if session.Name != nil && strings.TrimSpace(*session.Name) != "" {
		name = *session.Name
	}
	fmt.Fprintf(&b, "# %s\n", name)

	var actions []string
	for _, column := range session.Columns {
		fmt.Fprintf(&b, "\n## %s\n\n", ColumnTitle(column, lang))

		posts := postsInColumn(session.Posts, column.Index)
		if len(posts) == 0 {
			fmt.Fprintf(&b, "_%s_\n", i18n.Translate(lang, "SummaryBoard", "noPosts"))
			continue
		}
		for _, p := range posts {
			likes, dislikes := p.Tally()
			content := strings.TrimSpace(p.Content)
			if content == "" {
				content = i18n.Translate(lang, "Post", "noContent")
			}
			fmt.Fprintf(&b, "- (+%d/-%d) %s\n", likes, dislikes, oneLine(content))
			if session.Options.AllowGiphy && p.Giphy != nil && *p.Giphy != "" {
				fmt.Fprintf(&b, "  ![giphy](%s)\n", utils.GiphyURL(*p.Giphy))
			}
			if p.Action != nil && strings.TrimSpace(*p.Action) != "" {
				actions = append(actions, oneLine(*p.Action))
			}
		}
	}

	if len(actions) > 0 {
		fmt.Fprintf(&b, "\n## %s\n\n", i18n.Translate(lang, "Actions", "summaryTitle"))
		for _, a := range actions {
			fmt.Fprintf(&b, "- [ ] %s\n", a)
		}
	}

	markdown := b.String()
	return SessionSummary{
		Language: lang,
		Markdown: markdown,
		HTML:     utils.RenderMarkdown(markdown),
	}
}

// ColumnTitle is the column label, or the translated question for its type.
func ColumnTitle(column models.Column, lang i18n.Language) string {
	if strings.TrimSpace(column.Label) != "" {
		return column.Label
	}
	return i18n.Translate(lang, "PostBoard", string(column.Type)+"Question")
}

// postsInColumn keeps creation order among posts with the same score.
func postsInColumn(posts []models.Post, index int) []models.Post {
	var out []models.Post
	for _, p := range posts {
		if p.ColumnIndex == index {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return netVotes(out[i]) > netVotes(out[j])
	})
	return out
}

func netVotes(p models.Post) int {
	likes, dislikes := p.Tally()
	return likes - dislikes
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

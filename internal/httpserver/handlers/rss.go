package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/MrSnakeDoc/klub/internal/domain"
	"github.com/MrSnakeDoc/klub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/klub/internal/logger"
)

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate,omitempty"`
	Category    string  `xml:"category,omitempty"`
	Description string  `xml:"description"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// RSS serves the articles as an RSS 2.0 feed, newest first.
func RSS(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		articles, err := d.Portal.AdminArticles(r.Context())
		if err != nil {
			handleError(d, w, r, err)
			return
		}

		feed := buildFeed(d.SiteTitle, d.SiteURL, articles)

		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		if _, err := w.Write([]byte(xml.Header)); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
			return
		}
		enc := xml.NewEncoder(w)
		enc.Indent("", "  ")
		if err := enc.Encode(feed); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}

func buildFeed(title, siteURL string, articles []domain.Article) rssFeed {
	base := strings.TrimRight(siteURL, "/")
	items := make([]rssItem, 0, len(articles))
	for _, a := range articles {
		link := base + "/articles/" + a.Slug
		item := rssItem{
			Title:       a.Title,
			Link:        link,
			GUID:        rssGUID{IsPermaLink: false, Value: a.ID},
			Category:    a.Category.Name,
			Description: a.Excerpt,
		}
		if t, err := domain.ParseTimestamp(a.CreatedAt); err == nil {
			item.PubDate = t.Format(time.RFC1123Z)
		}
		items = append(items, item)
	}

	return rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       title,
			Link:        base,
			Description: title + " news",
			Language:    "en-us",
			Items:       items,
		},
	}
}

package feed

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"time"
)

// ErrFailedToWrite is returned when the feed cannot be encoded.
var ErrFailedToWrite = errors.New("failed to write rss feed")

// Channel is an RSS 2.0 channel.
type Channel struct {
	Title       string
	Link        string
	Description string
	Language    string
	Items       []Item
}

// Item is one entry of a channel.
type Item struct {
	Title       string
	Link        string
	GUID        string // defaults to Link
	PubDate     time.Time
	Description string
}

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate,omitempty"`
	Description string  `xml:"description,omitempty"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Write encodes ch as an RSS 2.0 document with an XML declaration.
// lastBuildDate is the newest item date; items without a date omit pubDate.
func Write(w io.Writer, ch Channel) error {
	doc := rssDocument{
		Version: "2.0",
		Channel: rssChannel{
			Title:       ch.Title,
			Link:        ch.Link,
			Description: ch.Description,
			Language:    strings.ToLower(ch.Language),
			Items:       make([]rssItem, 0, len(ch.Items)),
		},
	}

	var newest time.Time
	for _, it := range ch.Items {
		guid := it.GUID
		if guid == "" {
			guid = it.Link
		}
		item := rssItem{
			Title:       it.Title,
			Link:        it.Link,
			GUID:        rssGUID{IsPermaLink: guid == it.Link, Value: guid},
			Description: it.Description,
		}
		if !it.PubDate.IsZero() {
			item.PubDate = formatDate(it.PubDate)
			if it.PubDate.After(newest) {
				newest = it.PubDate
			}
		}
		doc.Channel.Items = append(doc.Channel.Items, item)
	}
	if !newest.IsZero() {
		doc.Channel.LastBuildDate = formatDate(newest)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	if err := enc.Close(); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	_, err := io.WriteString(w, "\n")
	if err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}

// formatDate renders t in RFC 1123 with a numeric zone, in UTC.
func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC1123Z)
}

// Package feed writes RSS 2.0 documents.
//
//	err := feed.Write(w, feed.Channel{
//	    Title:       "Chic Blog",
//	    Link:        "https://chic-lang.org/en-US/blog",
//	    Description: "News about the Chic programming language",
//	    Language:    "en-US",
//	    Items: []feed.Item{{
//	        Title:   "Launch",
//	        Link:    "https://chic-lang.org/en-US/blog/launch",
//	        PubDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
//	    }},
//	})
//
// Text is XML-escaped by encoding/xml. Dates use RFC 1123 with a numeric
// zone. GUIDs default to the item link and are then marked as permalinks.
package feed

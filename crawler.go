package main

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var errNoDocument = errors.New("no document fetched")

type Crawler interface {
	name() string
	getPage() (*goquery.Document, error)
	probe()
	run() (int, error)
}

// simpleGet returns the response body of a successful GET, or nil on any failure.
func simpleGet(uri string) []byte {
	res, err := http.Get(uri)
	if err != nil {
		log.Printf("Error during request to %s: %v", uri, err)
		return nil
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Printf("status code error for %s: %d %s", uri, res.StatusCode, res.Status)
		return nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		log.Printf("Error reading body of %s: %v", uri, err)
		return nil
	}

	return body
}

func crawl(uri string) (*goquery.Document, error) {
	return parseHTML(simpleGet(uri))
}

// parseHTML tolerates malformed markup. Only an absent body is an error.
func parseHTML(raw []byte) (*goquery.Document, error) {
	if raw == nil {
		return nil, errNoDocument
	}

	return goquery.NewDocumentFromReader(bytes.NewReader(raw))
}

// printMatches prints the text of every tag element containing needle, in
// document order, and returns how many were printed.
func printMatches(doc *goquery.Document, site, tag, needle string, p printer) (int, error) {
	var (
		cnt int
		err error
	)
	doc.Find(tag).EachWithBreak(func(i int, s *goquery.Selection) bool {
		text := visibleText(s)
		if !isMatch(text, needle) {
			return true
		}
		if err = p.print(&Record{Site: site, Tag: tag, Text: text}); err != nil {
			return false
		}
		cnt++
		return true
	})

	return cnt, err
}

// visibleText is the element text without script, style and template contents.
func visibleText(s *goquery.Selection) string {
	return s.Clone().Find("script,style,template").Remove().End().Text()
}

func isMatch(text, needle string) bool {
	return strings.Contains(text, needle)
}

package main

import (
	"fmt"
	"log"

	"github.com/PuerkitoBio/goquery"
)

type crawlerListing struct {
	site SiteConfig
	out  printer
}

func newListingCrawler(site SiteConfig, out printer) Crawler {
	return &crawlerListing{
		site: site,
		out:  out,
	}
}

func (c *crawlerListing) name() string {
	if c.site.Name != "" {
		return c.site.Name
	}
	return c.site.URL
}

func (c *crawlerListing) getPage() (*goquery.Document, error) {
	return crawl(c.site.URL)
}

// probe requests the configured not-found page. The body is discarded.
func (c *crawlerListing) probe() {
	if c.site.ProbeURL == "" {
		return
	}
	if simpleGet(c.site.ProbeURL) == nil {
		log.Printf("Probe %s returned nothing", c.site.ProbeURL)
		return
	}
	log.Printf("Probe %s returned a page", c.site.ProbeURL)
}

func (c *crawlerListing) run() (int, error) {
	log.Printf("Running %s crawler ...", c.name())
	c.probe()

	doc, err := c.getPage()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", c.name(), err)
	}

	cnt, err := printMatches(doc, c.name(), c.site.Tag, c.site.Match, c.out)
	if err != nil {
		return cnt, fmt.Errorf("%s: printing matches: %w", c.name(), err)
	}

	log.Printf("Found %d <%s> elements matching %q", cnt, c.site.Tag, c.site.Match)
	return cnt, nil
}

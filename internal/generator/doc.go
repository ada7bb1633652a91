// Package generator renders loaded documentation pages into a static site:
// one HTML document per route, plus sitemap, robots.txt, and a build
// manifest that records what the last run produced.
package generator

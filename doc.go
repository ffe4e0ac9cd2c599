// Package rawsite is a static-site generator for raw HTML content fragments.
// Authors write fragments (a title, a tag comment, a body) anywhere under a
// content root; rawsite wraps them in shared template chrome and keeps three
// derived indexes consistent with the fragments on disk: the home page, the
// chronological archive, and the per-tag pages. Feeds and a sitemap come out
// of the same pass.
//
// The pipeline is single-threaded and recomputes everything from the
// filesystem on every run; rebuilding an unchanged site reproduces every
// output byte for byte.
package rawsite

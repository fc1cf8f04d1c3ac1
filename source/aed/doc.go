// Package aed reads published AED lemma pages.
//
// Each lemma is rendered as a standalone HTML page named after its numeric
// id (89500.html). Pages come either from a ZIP snapshot of the published
// site or one at a time from the raw GitHub pages branch.
//
// Only the page body is kept. Renderer turns it into Markdown for review.
package aed

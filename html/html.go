/*
Package html creates indexed strings from the textual content of HTML.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/charindex"
	"golang.org/x/net/html"
)

// InnerText creates an indexed string for the textual content of an HTML
// element and all its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents).
func InnerText(n *html.Node) (charindex.IndexedString, error) {
	if n == nil {
		return charindex.IndexedString{}, charindex.ErrIllegalArguments
	}
	var b strings.Builder
	collectText(n, &b)
	return charindex.New(b.String())
}

// TextFromHTML creates an indexed string from the textual content of an HTML
// fragment. It does no interpretation of layout and styling, but extracts
// the pure text and indexes it.
func TextFromHTML(input io.Reader) (charindex.IndexedString, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return charindex.IndexedString{}, err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return charindex.New(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

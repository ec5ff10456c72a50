// Package tui renders the pagination control for terminals.
//
// BrowseModel is a Bubble Tea model that pages through a set of records with
// the pager bar underneath. RenderPager and RenderPlainPager turn controller
// items into styled or plain text for any renderer.
package tui

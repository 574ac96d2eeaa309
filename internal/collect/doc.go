// Package collect gathers market metadata, price history, and news
// sentiment for a fixed ticker list.
//
// All collectors apply the same degraded-output policy: a ticker whose
// fetch fails is logged at warn level and skipped; a run errors only when
// every ticker failed or the input list was empty.
package collect

// Package modelreg maps "app.Model" labels to the query sources behind them.
// Sources are registered once at process start and resolved fresh on every
// template render. The package also defines the narrow query capabilities a
// source can expose (Lister, Fetcher) and the Lookup result that makes the
// found / not-found / ambiguous outcomes of a primary-key lookup explicit
// instead of hiding them behind a nil or a swallowed error.
package modelreg

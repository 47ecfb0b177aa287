// Package naver implements the client for the Naver news search API.
//
// The API is paginated: each call returns up to 100 items starting at a
// 1-based offset. Responses carry the article title (with markup the caller
// must strip), the article link, and the publication date.
//
// # Error taxonomy
//
// Search failures are classified so that the pipeline can apply its
// fatal/recoverable policy:
//   - ErrInvalidCredentials: the client ID/secret pair was rejected (401)
//   - ErrQuotaExceeded: rate or permission limit hit (403, 429)
//   - SearchError: any other HTTP or transport failure
//
// All search failures are fatal for a run. Search results are foundational
// to every downstream token, so under-collecting silently would corrupt the
// aggregate statistics.
package naver

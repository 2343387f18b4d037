package fetch

// Package fetch implements the single outbound call of the app: a GET of the
// first page of the character endpoint, JSON decoding of the envelope, and
// extraction of its results. Every failure is reported as a *FetchFailure.

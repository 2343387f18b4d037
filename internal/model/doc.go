package model

// Package model defines the domain data used across the app: character
// records as returned by the API, the page envelope around them, and the
// three-way display state that drives what the screen shows.

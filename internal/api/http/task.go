package http

import (
	"math/rand/v2"
	"net/http"
)

var taskURLs = []string{
	"/static/wav/paris.wav",
	"/static/wav/spectrogram_demo_doorknock_mono.wav",
}

// NextTaskHandler serves a stub annotation task until real task routing
// exists: a random recording from a fixed set plus the current taxonomy.
func NextTaskHandler(tax *TaxonomyFetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", sourceURL)

		task := map[string]interface{}{
			"feedback":         "none",
			"visualization":    "spectrogram",
			"proximityTag":     []string{},
			"annotationTag":    tax.Values(r.Context()),
			"url":              taskURLs[rand.IntN(len(taskURLs))],
			"numRecordings":    10,
			"recordingIndex":   rand.IntN(11),
			"tutorialVideoURL": "https://www.youtube.com/embed/Bg8-83heFRM",
			"alwaysShowTags":   true,
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"task": task})
	}
}

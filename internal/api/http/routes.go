package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cosmir/openmic-backend/internal/database"
	"github.com/cosmir/openmic-backend/internal/storage"
)

// Mount wires the audio and annotation endpoints onto r.
func Mount(r chi.Router, bs storage.BlobStore, db database.Store, tax *TaxonomyFetcher) {
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", sourceURL)
		_, _ = w.Write([]byte("oh hai"))
	})

	r.Post("/audio/upload", UploadAudioHandler(bs, db))
	r.Get("/audio/{uri}", DownloadAudioHandler(bs, db))

	r.Post("/annotation/submit", SubmitAnnotationHandler())
	r.Get("/annotation/taxonomy", TaxonomyHandler(tax))

	r.Get("/task", NextTaskHandler(tax))
}

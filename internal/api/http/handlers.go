package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cosmir/openmic-backend/internal/contentid"
	"github.com/cosmir/openmic-backend/internal/database"
	"github.com/cosmir/openmic-backend/internal/mimetype"
	"github.com/cosmir/openmic-backend/internal/storage"
)

// Every response links back to the project page.
const sourceURL = "https://cosmir.github.io/open-mic/"

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// UploadAudioHandler reads the multipart "audio" field, stores the bytes
// under a content-derived key, and indexes a metadata record. Re-uploading
// identical bytes lands on the same key and simply rewrites the record.
func UploadAudioHandler(bs storage.BlobStore, db database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", sourceURL)

		f, hdr, err := r.FormFile("audio")
		if err != nil {
			http.Error(w, "audio file required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			http.Error(w, "failed reading upload", http.StatusBadRequest)
			return
		}

		uri := contentid.UUIDFor(data).String()
		key := uri + filepath.Ext(hdr.Filename)
		if err := bs.Upload(r.Context(), data, key); err != nil {
			log.Printf("upload %s: %v", key, err)
			http.Error(w, "store error", http.StatusInternalServerError)
			return
		}

		rec := database.Record{Filepath: key, Created: time.Now().UTC()}
		if err := db.Put(r.Context(), uri, rec); err != nil {
			log.Printf("index %s: %v", uri, err)
			http.Error(w, "database error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"uri":      uri,
			"filepath": rec.Filepath,
			"created":  rec.Created.Format(time.RFC3339),
			"message":  fmt.Sprintf("Received %d bytes of data.", len(data)),
		})
	}
}

// DownloadAudioHandler resolves the uri to its metadata record and serves
// the blob with a MIME type derived from the stored filename.
func DownloadAudioHandler(bs storage.BlobStore, db database.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uri := chi.URLParam(r, "uri")
		w.Header().Set("Link", sourceURL)

		rec, err := db.Get(r.Context(), uri)
		if errors.Is(err, database.ErrNoRecord) {
			writeJSON(w, http.StatusNotFound,
				map[string]string{"message": "Resource not found: " + uri})
			return
		}
		if err != nil {
			log.Printf("lookup %s: %v", uri, err)
			http.Error(w, "database error", http.StatusInternalServerError)
			return
		}

		data, err := bs.Download(r.Context(), rec.Filepath)
		if errors.Is(err, storage.ErrNotFound) {
			writeJSON(w, http.StatusNotFound,
				map[string]string{"message": "Resource not found: " + uri})
			return
		}
		if err != nil {
			log.Printf("download %s: %v", rec.Filepath, err)
			http.Error(w, "store error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", mimetype.ForFile(rec.Filepath))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// SubmitAnnotationHandler accepts a JSON annotation payload. Payloads are
// only logged for now; persistence comes with the annotation pipeline.
func SubmitAnnotationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Link", sourceURL)

		if ct := r.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"message": "Invalid Content-Type; only accepts application/json",
			})
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed reading body", http.StatusBadRequest)
			return
		}
		var payload map[string]interface{}
		if err := json.Unmarshal(body, &payload); err != nil {
			writeJSON(w, http.StatusBadRequest,
				map[string]string{"message": "Invalid JSON payload"})
			return
		}

		log.Printf("received annotation: %s", body)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Success!"})
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/hongminglow/guard-reports-be/internal/apperr"
)

const maxBodyBytes = 1 << 20

// decodeBody fills dst from a JSON or urlencoded form body. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		return decodeForm(r, dst)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.BadRequest("JSON inválido")
	}
	return nil
}

// decodeForm maps the first value of each form key onto dst's json field names.
func decodeForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return apperr.BadRequest("Formulario inválido")
	}
	values := make(map[string]string, len(r.PostForm))
	for key := range r.PostForm {
		values[key] = r.PostForm.Get(key)
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return apperr.Internal("encode form", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return apperr.BadRequest("Formulario inválido")
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.BadRequest("Identificador inválido")
	}
	return id, nil
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"ShoppingList/internal/apperr"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError отдаёт ошибку в формате {"detail","code","errors"}.
// Клиентские ошибки логируются как Warn, серверные как Error.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.SugaredLogger, op string, err error) {
	status, body := apperr.BodyOf(err)
	if status >= http.StatusInternalServerError {
		logger.Errorw(op+": server error", "path", r.URL.Path, "status", status, "error", err)
	} else {
		logger.Warnw(op+": request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, body)
}

// decodeJSON читает тело запроса в dst. Битый JSON и неверные типы дают ошибку валидации.
// Неизвестные поля игнорируются.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return apperr.New(apperr.CodeValidation, "request body is required")
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return apperr.Wrap(apperr.CodeValidation, err, "validation failed").
			WithDetails(map[string]string{typeErr.Field: fmt.Sprintf("must be %s", typeErr.Type)})
	case errors.As(err, &maxErr):
		return apperr.Wrap(apperr.CodeValidation, err, "request body too large")
	}
	return apperr.Wrap(apperr.CodeValidation, err, "malformed JSON body")
}

// parseID разбирает {id} из пути; нечисловой id даёт ошибку валидации (422).
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Wrap(apperr.CodeValidation, err, "validation failed").
			WithDetails(map[string]string{"id": "must be an integer"})
	}
	return id, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

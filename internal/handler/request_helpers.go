package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/osse101/PrizeDraw_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// If it returns an error the response has already been written and the handler should return.
//
//	var req ResetRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Reset draw"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, false)
}

// DecodeOptionalRequest is DecodeAndValidateRequest for endpoints whose body may be empty
func DecodeOptionalRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	return decodeAndValidate(r, w, req, actionName, true)
}

func decodeAndValidate(r *http.Request, w http.ResponseWriter, req interface{}, actionName string, allowEmpty bool) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return validateRequest(w, req)
		}
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, CodeInvalidRequest, ErrMsgRequestTooLarge)
			return err
		}
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)
	return validateRequest(w, req)
}

func validateRequest(w http.ResponseWriter, req interface{}) error {
	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Code:   CodeInvalidRequest,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// GetOptionalIntQueryParam reads an optional integer query parameter.
// ok is false when the parameter is present but not an integer; the response has been written.
func GetOptionalIntQueryParam(r *http.Request, w http.ResponseWriter, paramName, errMsg string) (value int, present, ok bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return 0, false, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgDecodeFailed, "param", paramName, "value", raw)
		respondError(w, http.StatusBadRequest, CodeInvalidRequest, errMsg)
		return 0, true, false
	}
	return n, true, true
}

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxUploadSize caps résumé uploads at 10 MB.
const maxUploadSize = 10 << 20

// ParseTextRequest is the JSON body for /parse when no file is uploaded.
type ParseTextRequest struct {
	Text     string `json:"text" validate:"required"`
	Filename string `json:"filename,omitempty"`
}

// ParseResponse is the response for /parse.
type ParseResponse struct {
	ID      string              `json:"id"`
	Record  *types.ResumeRecord `json:"record"`
	Warning string              `json:"warning,omitempty"`
}

// handleParse accepts a résumé as a multipart file upload or as raw text in
// a JSON body, parses it, and stores the result.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		s.handleParseUpload(w, r)
		return
	}
	s.handleParseText(w, r)
}

func (s *Server) handleParseUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	stored, err := ingestion.SaveUpload(s.uploadDir, header.Filename, file)
	if err != nil {
		if errors.Is(err, ingestion.ErrUnsupportedFormat) {
			s.errorResponse(w, http.StatusBadRequest, "Invalid file type. Please upload a PDF, DOC, DOCX, or TXT file.")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save file: "+err.Error())
		return
	}

	text, err := ingestion.ExtractText(stored)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Failed to extract text: "+err.Error())
		return
	}

	s.parseAndStore(w, r, header.Filename, text)
}

func (s *Server) handleParseText(w http.ResponseWriter, r *http.Request) {
	var req ParseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	filename := req.Filename
	if filename == "" {
		filename = "inline.txt"
	}
	s.parseAndStore(w, r, filename, req.Text)
}

func (s *Server) parseAndStore(w http.ResponseWriter, r *http.Request, filename, text string) {
	record, err := s.parser.Parse(text)
	var warning string
	switch {
	case errors.Is(err, parsing.ErrEmptyInput):
		s.errorResponse(w, http.StatusBadRequest, "Resume text is empty")
		return
	case errors.Is(err, parsing.ErrNoStructure):
		warning = "no section headers recognized; contact information extracted from document head"
	case err != nil:
		s.errorResponse(w, http.StatusInternalServerError, "Failed to parse resume: "+err.Error())
		return
	}

	id, err := s.db.SaveResume(r.Context(), filename, record)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store resume: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, ParseResponse{ID: id, Record: record, Warning: warning})
}

// handleListResumes returns all stored résumés without their records.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.db.ListResumes(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, resumes)
}

// handleGetResume returns one stored résumé with its parsed record.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	stored, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if stored == nil {
		notFound := &ErrResumeNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, stored)
}

// handleDeleteResume removes a stored résumé.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	deleted, err := s.db.DeleteResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !deleted {
		notFound := &ErrResumeNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume deleted successfully"})
}

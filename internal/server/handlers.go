package server

import (
	_ "embed"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-navigator/internal/pdfext"
	"github.com/jonathan/career-navigator/internal/roles"
	"github.com/jonathan/career-navigator/internal/store"
	"github.com/jonathan/career-navigator/internal/types"
)

//go:embed sample_resume.txt
var sampleResume string

// sessionHeader identifies the plan a client is working with. Requests
// without the header share a single default session.
const sessionHeader = "X-Session-ID"

// UploadResponse represents the response for /upload-resume
type UploadResponse struct {
	Success    bool   `json:"success"`
	Filename   string `json:"filename"`
	ResumeText string `json:"resume_text"`
	CharCount  int    `json:"char_count"`
}

// RolesResponse represents the response for /roles
type RolesResponse struct {
	Roles []string `json:"roles"`
}

func (s *Server) sessionID(r *http.Request, w http.ResponseWriter) string {
	id := strings.TrimSpace(r.Header.Get(sessionHeader))
	if id == "" {
		id = store.DefaultSession
	}
	w.Header().Set(sessionHeader, id)
	return id
}

// handleGenerateRoadmap runs the full plan synthesis for a resume and
// dream role. The pipeline degrades to canned content internally, so
// this handler always returns a complete plan on success paths.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sessionID := s.sessionID(r, w)
	plan := s.pipeline.Generate(r.Context(), &req, sessionID)
	s.jsonResponse(w, http.StatusOK, plan)
}

// handleAdaptRoadmap revises the stored plan after missed days.
func (s *Server) handleAdaptRoadmap(w http.ResponseWriter, r *http.Request) {
	var req types.AdaptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON in request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sessionID := s.sessionID(r, w)
	adapted, err := s.pipeline.Adapt(r.Context(), &req, sessionID)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error adapting roadmap: %v", err)
			s.errorResponse(w, status, "Failed to adapt roadmap")
			return
		}
		s.errorResponse(w, status, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, adapted)
}

// handleUploadResume extracts plain text from an uploaded PDF.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(pdfext.MaxPDFSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form data")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field in form data")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		s.errorResponse(w, http.StatusBadRequest, "Only PDF files are supported")
		return
	}

	// Read one byte past the ceiling so oversize uploads are detectable.
	data, err := io.ReadAll(io.LimitReader(file, pdfext.MaxPDFSize+1))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read uploaded file")
		return
	}

	text, err := pdfext.ExtractText(data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		Success:    true,
		Filename:   header.Filename,
		ResumeText: text,
		CharCount:  len(text),
	})
}

// handleRoles lists the roles with curated requirement context.
func (s *Server) handleRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, RolesResponse{Roles: roles.List()})
}

// handleSampleResume returns a canned resume for demo use.
func (s *Server) handleSampleResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"resume_text": sampleResume})
}

package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-parser/internal/fetch"
	"github.com/jonathan/resume-parser/internal/ranking"
	"github.com/jonathan/resume-parser/internal/types"
)

// RankRequest is the request body for POST /rank. Experiences come from a
// stored résumé or inline; the job description is given inline, by reference
// to a saved job, or by posting URL.
type RankRequest struct {
	ResumeID       string                  `json:"resume_id,omitempty"`
	Experiences    []types.ExperienceEntry `json:"experiences,omitempty"`
	JobDescription string                  `json:"job_description,omitempty"`
	JobID          int64                   `json:"job_id,omitempty"`
	JobURL         string                  `json:"job_url,omitempty" validate:"omitempty,url"`
	MaxItems       int                     `json:"max_items,omitempty" validate:"omitempty,min=1"`
}

// RankResponse is the response for POST /rank.
type RankResponse struct {
	Ranked   []types.RankedExperienceEntry `json:"ranked"`
	Selected []types.RankedExperienceEntry `json:"selected"`
}

// SkillGapsRequest is the request body for POST /skill-gaps.
type SkillGapsRequest struct {
	ResumeID       string   `json:"resume_id,omitempty"`
	Skills         []string `json:"skills,omitempty"`
	JobDescription string   `json:"job_description,omitempty"`
	JobID          int64    `json:"job_id,omitempty"`
	JobURL         string   `json:"job_url,omitempty" validate:"omitempty,url"`
}

// SkillGapsResponse is the response for POST /skill-gaps.
type SkillGapsResponse struct {
	SkillGaps []string `json:"skill_gaps"`
}

// handleRank ranks résumé experiences against a job description.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	experiences := req.Experiences
	if len(experiences) == 0 {
		if req.ResumeID == "" {
			s.errorResponse(w, http.StatusBadRequest, "resume_id or experiences is required")
			return
		}
		record, err := s.loadResumeRecord(r.Context(), req.ResumeID)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		experiences = record.Experiences
	}

	jobDescription, err := s.resolveJobDescription(r.Context(), req.JobDescription, req.JobID, req.JobURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RankResponse{
		Ranked:   ranking.RankExperiences(experiences, jobDescription),
		Selected: ranking.SelectRelevantExperiences(experiences, jobDescription, req.MaxItems),
	})
}

// handleSkillGaps reports job-description skills a résumé lacks.
func (s *Server) handleSkillGaps(w http.ResponseWriter, r *http.Request) {
	var req SkillGapsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	skills := req.Skills
	if len(skills) == 0 {
		if req.ResumeID == "" {
			s.errorResponse(w, http.StatusBadRequest, "resume_id or skills is required")
			return
		}
		record, err := s.loadResumeRecord(r.Context(), req.ResumeID)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		skills = record.Skills.All()
	}

	jobDescription, err := s.resolveJobDescription(r.Context(), req.JobDescription, req.JobID, req.JobURL)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	gaps := ranking.IdentifySkillGaps(skills, jobDescription)
	s.jsonResponse(w, http.StatusOK, SkillGapsResponse{SkillGaps: gaps})
}

// loadResumeRecord fetches a stored résumé's parsed record.
func (s *Server) loadResumeRecord(ctx context.Context, id string) (*types.ResumeRecord, error) {
	stored, err := s.db.GetResume(ctx, id)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, &ErrResumeNotFound{ID: id}
	}
	return stored.Record, nil
}

// resolveJobDescription returns the inline job description, the saved job's
// description when a job ID is given, or the fetched posting text when a job
// URL is given, in that precedence order.
func (s *Server) resolveJobDescription(ctx context.Context, inline string, jobID int64, jobURL string) (string, error) {
	if inline != "" {
		return inline, nil
	}

	if jobID > 0 {
		job, err := s.db.GetJob(ctx, jobID)
		if err != nil {
			return "", err
		}
		if job == nil {
			return "", &ErrJobNotFound{ID: jobID}
		}
		return job.Description, nil
	}

	if jobURL != "" {
		result, err := fetch.JobPosting(ctx, jobURL, nil)
		if err != nil {
			return "", err
		}
		return result.Text, nil
	}

	return "", &ErrValidation{Field: "job_description", Message: "job_description, job_id, or job_url is required"}
}

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/alexiusacademia/gobeam/internal/batch"
	"github.com/alexiusacademia/gobeam/internal/beam"
	"github.com/alexiusacademia/gobeam/internal/diagram"
	"github.com/alexiusacademia/gobeam/internal/report"
	"github.com/alexiusacademia/gobeam/internal/version"
)

// DesignRequest is the JSON payload for the design endpoint.
type DesignRequest struct {
	BeamType string  `json:"beam_type"`
	UDLKNM   float64 `json:"udl_kn_m"`
	SpanM    float64 `json:"span_m"`
	WidthMM  float64 `json:"width_mm"`
	DepthMM  float64 `json:"depth_mm"`
	FcMPa    float64 `json:"fc_mpa"`
	FyMPa    float64 `json:"fy_mpa"`
}

// DesignResponse is the JSON result of the design endpoint.
type DesignResponse struct {
	BeamType    string  `json:"beam_type"`
	MuKNM       float64 `json:"mu_knm"`
	AsMM2       float64 `json:"as_mm2"`
	VuKN        float64 `json:"vu_kn"`
	PhiVcKN     float64 `json:"phi_vc_kn"`
	ShearStatus string  `json:"shear_status"`
}

// ReportRequest extends a design request with the report title block.
type ReportRequest struct {
	Project  string `json:"project"`
	Engineer string `json:"engineer"`
	Title    string `json:"title"`
	DesignRequest
}

func (r DesignRequest) beam() (*beam.Beam, error) {
	variant, err := beam.ParseVariant(r.BeamType)
	if err != nil {
		return nil, err
	}
	return beam.New(variant, r.UDLKNM, r.SpanM, r.WidthMM, r.DepthMM, r.FcMPa, r.FyMPa), nil
}

func (s *Server) handleDesign(w http.ResponseWriter, r *http.Request) {
	var req DesignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	b, err := req.beam()
	if err != nil {
		s.clientError(w, err)
		return
	}
	res, err := b.Design()
	if err != nil {
		s.clientError(w, err)
		return
	}
	writeJSON(w, DesignResponse{
		BeamType:    b.Variant.String(),
		MuKNM:       res.Mu,
		AsMM2:       res.As,
		VuKN:        res.Vu,
		PhiVcKN:     res.PhiVc,
		ShearStatus: res.ShearStatus.String(),
	})
}

func (s *Server) handleSchematic(w http.ResponseWriter, r *http.Request) {
	variant, err := beam.ParseVariant(r.URL.Query().Get("type"))
	if err != nil {
		s.clientError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := diagram.WriteSchematic(variant, &buf); err != nil {
		s.serverError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *Server) handleEnvelope(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	variant, err := beam.ParseVariant(q.Get("type"))
	if err != nil {
		s.clientError(w, err)
		return
	}
	udl, err := queryFloat(q, "w")
	if err != nil {
		s.clientError(w, err)
		return
	}
	span, err := queryFloat(q, "span")
	if err != nil {
		s.clientError(w, err)
		return
	}
	env, err := beam.NewEnvelope(variant, udl, span)
	if err != nil {
		s.clientError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := diagram.WriteEnvelopeDiagrams(env, &buf); err != nil {
		s.serverError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	b, err := req.beam()
	if err != nil {
		s.clientError(w, err)
		return
	}

	meta := report.Meta{Project: req.Project, Engineer: req.Engineer, Title: req.Title}
	var buf bytes.Buffer
	if err := report.Generate(meta, b, &buf); err != nil {
		if errors.Is(err, beam.ErrDomain) || errors.Is(err, beam.ErrSpan) {
			s.clientError(w, err)
		} else {
			s.serverError(w, err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="design.pdf"`)
	w.Write(buf.Bytes())
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rows, err := batch.Process(file)
	if err != nil {
		s.clientError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := batch.WriteResults(rows, &buf); err != nil {
		s.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="results.xlsx"`)
	w.Write(buf.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) clientError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func (s *Server) serverError(w http.ResponseWriter, err error) {
	s.log.Error("Request failed", zap.Error(err))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func queryFloat(q url.Values, key string) (float64, error) {
	v, err := strconv.ParseFloat(q.Get(key), 64)
	if err != nil {
		return 0, fmt.Errorf("query parameter %s must be a number", key)
	}
	return v, nil
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/model"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/render"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/settings"
	"github.com/fikriihsanabdulloh09-commits/Mustaqbal-Webaite-sub001/internal/store"
)

// PpdbHandler handles the public admission form and the admin review screens.
type PpdbHandler struct {
	queries  *store.Queries
	renderer *render.Renderer
}

// NewPpdbHandler creates a new PpdbHandler.
func NewPpdbHandler(db *sql.DB, renderer *render.Renderer) *PpdbHandler {
	return &PpdbHandler{
		queries:  store.New(db),
		renderer: renderer,
	}
}

// Form renders the public admission form.
func (h *PpdbHandler) Form(w http.ResponseWriter, r *http.Request) {
	programs, err := h.queries.ListActivePrograms(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list programs for admission form", "error", err)
		return
	}

	contact, err := settings.Get(r.Context(), h.queries, model.PageKontak, settings.DefaultContactSettings())
	if err != nil {
		logAndInternalError(w, "failed to load contact settings", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "public/ppdb", render.TemplateData{
		Title: "PPDB",
		Data: map[string]any{
			"Programs": programs,
			"Contact":  contact,
		},
	}); err != nil {
		logAndInternalError(w, "rendering admission form", "error", err)
	}
}

// Submit handles the public admission form submission.
func (h *PpdbHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if !parseFormOrRedirect(w, r, h.renderer, "/ppdb") {
		return
	}

	in, err := parsePpdbForm(r)
	if err != nil {
		flashError(w, r, h.renderer, "/ppdb", err.Error())
		return
	}

	submission, err := h.queries.CreatePpdbSubmission(r.Context(), store.CreatePpdbSubmissionParams{
		FullName:      in.fullName,
		BirthDate:     in.birthDate,
		Gender:        in.gender,
		OriginSchool:  in.originSchool,
		ChosenProgram: in.chosenProgram,
		GuardianName:  in.guardianName,
		Phone:         in.phone,
		Email:         in.email,
		Address:       in.address,
		Status:        model.PPDBStatusNew,
		Notes:         "",
		CreatedAt:     time.Now(),
	})
	if err != nil {
		slog.Error("failed to create admission submission", "error", err)
		flashError(w, r, h.renderer, "/ppdb", "Pendaftaran gagal disimpan, silakan coba lagi")
		return
	}

	slog.Info("admission submission received", "submission_id", submission.ID,
		"program", submission.ChosenProgram, "category", "content")
	flashSuccess(w, r, h.renderer, "/ppdb", "Pendaftaran berhasil dikirim. Kami akan menghubungi Anda.")
}

// List renders the admin review screen, optionally filtered by status.
func (h *PpdbHandler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")

	var (
		submissions []store.PpdbSubmission
		err         error
	)
	if model.IsValidPPDBStatus(status) {
		submissions, err = h.queries.ListPpdbSubmissionsByStatus(r.Context(), status)
	} else {
		status = ""
		submissions, err = h.queries.ListPpdbSubmissions(r.Context())
	}
	if err != nil {
		logAndInternalError(w, "failed to list admission submissions", "error", err)
		return
	}

	if err := h.renderer.Render(w, r, "admin/ppdb_list", render.TemplateData{
		Title: "Pendaftaran PPDB",
		Data: map[string]any{
			"Submissions": submissions,
			"Status":      status,
			"Statuses":    []string{model.PPDBStatusNew, model.PPDBStatusVerified, model.PPDBStatusAccepted, model.PPDBStatusRejected},
		},
	}); err != nil {
		logAndInternalError(w, "rendering admission list", "error", err)
	}
}

// Detail renders one submission.
func (h *PpdbHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPpdb, "ID tidak valid")
		return
	}

	submission, ok := requireEntityWithRedirect(w, r, h.renderer, redirectPpdb, "submission", id,
		func(id int64) (store.PpdbSubmission, error) { return h.queries.GetPpdbSubmission(r.Context(), id) })
	if !ok {
		return
	}

	if err := h.renderer.Render(w, r, "admin/ppdb_detail", render.TemplateData{
		Title: "Pendaftaran: " + submission.FullName,
		Data: map[string]any{
			"Submission": submission,
			"Statuses":   []string{model.PPDBStatusNew, model.PPDBStatusVerified, model.PPDBStatusAccepted, model.PPDBStatusRejected},
		},
	}); err != nil {
		logAndInternalError(w, "rendering admission detail", "error", err)
	}
}

// UpdateStatus moves a submission through the review workflow.
func (h *PpdbHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPpdb, "ID tidak valid")
		return
	}
	detailURL := fmt.Sprintf("%s/%d", redirectPpdb, id)

	if !parseFormOrRedirect(w, r, h.renderer, detailURL) {
		return
	}

	status := r.FormValue("status")
	if !model.IsValidPPDBStatus(status) {
		flashError(w, r, h.renderer, detailURL, "Status tidak dikenal")
		return
	}

	if err := h.queries.UpdatePpdbStatus(r.Context(), store.UpdatePpdbStatusParams{
		Status: status,
		Notes:  strings.TrimSpace(r.FormValue("notes")),
		ID:     id,
	}); err != nil {
		slog.Error("failed to update submission status", "error", err, "submission_id", id)
		flashError(w, r, h.renderer, detailURL, "Gagal mengubah status")
		return
	}

	slog.Info("admission status updated", "submission_id", id, "status", status,
		"user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, detailURL, "Status diperbarui")
}

// Delete removes a submission.
func (h *PpdbHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		flashError(w, r, h.renderer, redirectPpdb, "ID tidak valid")
		return
	}

	if err := h.queries.DeletePpdbSubmission(r.Context(), id); err != nil {
		slog.Error("failed to delete submission", "error", err, "submission_id", id)
		flashError(w, r, h.renderer, redirectPpdb, "Gagal menghapus pendaftaran")
		return
	}

	slog.Info("admission submission deleted", "submission_id", id,
		"user_id", userIDFromRequest(r), "category", "content")
	flashSuccess(w, r, h.renderer, redirectPpdb, "Pendaftaran dihapus")
}

// ExportCSV streams every submission as a CSV download.
func (h *PpdbHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.queries.ListPpdbSubmissions(r.Context())
	if err != nil {
		logAndInternalError(w, "failed to list submissions for export", "error", err)
		return
	}

	filename := "ppdb-" + time.Now().Format("2006-01-02") + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"id", "nama_lengkap", "tanggal_lahir", "jenis_kelamin", "asal_sekolah",
		"program_pilihan", "nama_wali", "telepon", "email", "alamat", "status", "catatan", "tanggal_daftar",
	})
	for _, s := range submissions {
		if err := cw.Write([]string{
			strconv.FormatInt(s.ID, 10),
			s.FullName,
			s.BirthDate,
			s.Gender,
			s.OriginSchool,
			s.ChosenProgram,
			s.GuardianName,
			s.Phone,
			s.Email,
			s.Address,
			s.Status,
			s.Notes,
			s.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			slog.Error("csv export write failed", "error", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("csv export flush failed", "error", err)
	}
}

type ppdbFormInput struct {
	fullName      string
	birthDate     string
	gender        string
	originSchool  string
	chosenProgram string
	guardianName  string
	phone         string
	email         string
	address       string
}

func parsePpdbForm(r *http.Request) (ppdbFormInput, error) {
	in := ppdbFormInput{
		fullName:      strings.TrimSpace(r.FormValue("full_name")),
		birthDate:     strings.TrimSpace(r.FormValue("birth_date")),
		gender:        r.FormValue("gender"),
		originSchool:  strings.TrimSpace(r.FormValue("origin_school")),
		chosenProgram: strings.TrimSpace(r.FormValue("chosen_program")),
		guardianName:  strings.TrimSpace(r.FormValue("guardian_name")),
		phone:         strings.TrimSpace(r.FormValue("phone")),
		email:         strings.TrimSpace(r.FormValue("email")),
		address:       strings.TrimSpace(r.FormValue("address")),
	}

	if in.fullName == "" {
		return in, fmt.Errorf("nama lengkap wajib diisi")
	}
	if in.chosenProgram == "" {
		return in, fmt.Errorf("program pilihan wajib diisi")
	}
	if in.phone == "" && in.email == "" {
		return in, fmt.Errorf("telepon atau email wajib diisi")
	}
	if in.birthDate != "" {
		if _, err := time.Parse("2006-01-02", in.birthDate); err != nil {
			return in, fmt.Errorf("format tanggal lahir tidak valid")
		}
	}
	if in.gender != "" && in.gender != "L" && in.gender != "P" {
		return in, fmt.Errorf("jenis kelamin tidak dikenal")
	}
	return in, nil
}

package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"mavhu/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// handleGetCropYield serves the stored crop-yield report for a company.
// Without ?year= the most recent reporting year wins. The payload is
// returned exactly as the processor ingested it.
func (a *App) handleGetCropYield(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyId")
	if _, err := primitive.ObjectIDFromHex(companyID); err != nil {
		writeErr(w, http.StatusBadRequest, "bad company id")
		return
	}

	filter := bson.M{"companyId": companyID}
	if y := r.URL.Query().Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "year must be an integer")
			return
		}
		filter["year"] = year
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	var doc reportDoc
	err := a.reports.FindOne(ctx, filter,
		options.FindOne().SetSort(bson.D{{Key: "year", Value: -1}}),
	).Decode(&doc)
	if err != nil {
		if _, hasYear := filter["year"]; hasYear {
			// A report exists only for years inside the reporting period.
			if n, cerr := a.reports.CountDocuments(ctx, bson.M{"companyId": companyID}); cerr == nil && n > 0 {
				writeErr(w, http.StatusUnprocessableEntity, "no report for the requested year")
				return
			}
		}
		writeErr(w, http.StatusNotFound, "no crop yield forecast for this company")
		return
	}
	writeJSON(w, http.StatusOK, doc.Payload)
}

// handleIngestCropYield upserts a processor-produced report, keyed by
// (company, reporting year). The document replaces any previous one whole;
// reports are atomic and never patched in place.
func (a *App) handleIngestCropYield(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyId")
	oid, err := primitive.ObjectIDFromHex(companyID)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "bad company id")
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeErr(w, http.StatusBadRequest, "read body")
		return
	}

	// Shape check: the payload must decode as a crop-yield report with a
	// reporting year. Unknown extra fields pass through untouched.
	var report models.CropYieldReport
	if err := json.Unmarshal(raw, &report); err != nil {
		writeErr(w, http.StatusUnprocessableEntity, "payload is not a crop yield report: "+err.Error())
		return
	}
	if report.ReportingPeriod.Year == 0 {
		writeErr(w, http.StatusUnprocessableEntity, "reporting_period.year is required")
		return
	}

	payload, err := rawJSON(raw)
	if err != nil {
		writeErr(w, http.StatusUnprocessableEntity, "payload is not a JSON object")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	// The company must exist; orphan reports are never stored.
	if err := a.companies.FindOne(ctx, bson.M{"_id": oid},
		options.FindOne().SetProjection(bson.M{"_id": 1})).Err(); err != nil {
		writeErr(w, http.StatusNotFound, "company not found")
		return
	}

	doc := reportDoc{
		CompanyID: companyID,
		Year:      report.ReportingPeriod.Year,
		UpdatedAt: time.Now().UTC(),
		Payload:   payload,
	}
	_, err = a.reports.ReplaceOne(ctx,
		bson.M{"companyId": companyID, "year": doc.Year},
		&doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "db error")
		return
	}

	// A stored report means ESG data has been collected for the company.
	if _, err := a.companies.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"esg_status": models.ESGStatusComplete, "updated_at": time.Now()}},
	); err != nil {
		a.log.Warn("esg status update failed", zap.String("companyId", companyID), zap.Error(err))
	}

	a.log.Info("report ingested",
		zap.String("companyId", companyID),
		zap.Int("year", doc.Year))
	writeJSON(w, http.StatusOK, bson.M{"ok": true, "year": doc.Year})
}
